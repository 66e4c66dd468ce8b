package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs the local Tesseract engine over in-memory page
// images.
type TesseractClient struct {
	tessdataPrefix string
	language       string
	dpi            int
}

func NewTesseractClient(tessdataPrefix, language string, dpi int) *TesseractClient {
	return &TesseractClient{
		tessdataPrefix: tessdataPrefix,
		language:       language,
		dpi:            dpi,
	}
}

// RecognizeImage runs OCR over a single page image and returns the text
// together with the mean word confidence (0-100).
func (tc *TesseractClient) RecognizeImage(img image.Image) (string, float64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if tc.tessdataPrefix != "" {
		client.SetTessdataPrefix(tc.tessdataPrefix)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	// rasterized pdf pages carry no dpi metadata, so tell tesseract
	if tc.dpi > 0 {
		client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(tc.dpi))
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	// Get bounding boxes to calculate confidence
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// If bounding boxes fail, just return text and 0 confidence
		return text, 0, nil
	}

	var totalConf float64
	var count int
	for _, box := range boxes {
		totalConf += box.Confidence
		count++
	}

	avgConf := 0.0
	if count > 0 {
		avgConf = totalConf / float64(count)
	}

	return text, avgConf, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
