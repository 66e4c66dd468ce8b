package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// RemoteOCRClient calls an HTTP OCR service (a PaddleOCR style predict
// endpoint) instead of the local Tesseract engine. Useful when the
// analyzer runs in a container without tessdata installed.
type RemoteOCRClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewRemoteOCRClient(apiURL string) *RemoteOCRClient {
	return &RemoteOCRClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// RecognizePDF sends the whole document to the OCR service and returns
// the recognized lines. The service accepts base64 documents and
// rasterizes them on its side.
func (rc *RemoteOCRClient) RecognizePDF(pdfData []byte) (string, error) {
	payload := map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(pdfData)},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := rc.httpClient.Post(rc.apiURL, "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to call OCR service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results [][]struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %w", err)
	}

	var textBuilder strings.Builder
	var totalConf float64
	var lines int
	for _, page := range result.Results {
		for _, line := range page {
			textBuilder.WriteString(line.Text)
			textBuilder.WriteString("\n")
			totalConf += line.Confidence
			lines++
		}
	}

	text := textBuilder.String()
	if text == "" {
		return "", fmt.Errorf("OCR service extracted no text")
	}

	log.Printf("Remote OCR extracted %d characters, mean confidence %.2f", len(text), totalConf/float64(lines))
	return text, nil
}
