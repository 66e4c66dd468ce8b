package service

import (
	"fmt"
	"image"
	"log"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/paystublab/analyzer/dto"
)

// DefaultMinTextLength is the stripped length below which the structural
// text layer counts as unusable and the OCR fallback runs.
const DefaultMinTextLength = 50

// TextSource is one way of turning an uploaded document into text.
type TextSource interface {
	Name() string
	AcquireText(data []byte) (string, error)
}

// OCREngine is the consumer side contract for an OCR implementation.
type OCREngine interface {
	RecognizeImage(img image.Image) (string, float64, error)
}

// TextAcquirer runs the primary source and falls back to the secondary
// when the primary yields too little text. Whichever result is longer
// wins. Source failures degrade to empty text instead of aborting, so
// extraction always gets something to chew on.
type TextAcquirer struct {
	primary       TextSource
	fallback      TextSource
	minTextLength int
}

func NewTextAcquirer(primary, fallback TextSource, minTextLength int) *TextAcquirer {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	return &TextAcquirer{
		primary:       primary,
		fallback:      fallback,
		minTextLength: minTextLength,
	}
}

func (a *TextAcquirer) AcquireText(data []byte) (string, dto.AcquisitionReport) {
	report := dto.AcquisitionReport{Method: a.primary.Name()}

	text, err := a.primary.AcquireText(data)
	if err != nil {
		log.Printf("Warning: %s extraction failed: %v", a.primary.Name(), err)
		report.Warnings = append(report.Warnings, "text_layer_extraction_failed")
		text = ""
	}
	text = normalizeText(text)

	if a.needsFallback(text) {
		report.FallbackFired = true

		fallbackText, err := a.fallback.AcquireText(data)
		if err != nil {
			log.Printf("Warning: %s extraction failed: %v", a.fallback.Name(), err)
			report.Warnings = append(report.Warnings, "ocr_extraction_failed")
		} else {
			fallbackText = normalizeText(fallbackText)
			if len(fallbackText) > len(text) {
				text = fallbackText
				report.Method = a.fallback.Name()
			}
		}
	}

	report.TextLength = len(text)
	return text, report
}

// needsFallback reports whether the text layer is too thin to trust.
// Image-only stubs produce empty or nearly empty text layers.
func (a *TextAcquirer) needsFallback(text string) bool {
	return len(strings.TrimSpace(text)) < a.minTextLength
}

// normalizeText applies NFKC so ligatures and fullwidth forms compare
// equal to plain ASCII, and drops control characters other than tab and
// newline.
func normalizeText(text string) string {
	normalized := norm.NFKC.String(text)

	var sb strings.Builder
	sb.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// textLayerSource reads the structural text layer of the PDF.
type textLayerSource struct {
	pdf PDFProcessor
}

func NewTextLayerSource(pdf PDFProcessor) TextSource {
	return &textLayerSource{pdf: pdf}
}

func (s *textLayerSource) Name() string {
	return "pdf-text"
}

func (s *textLayerSource) AcquireText(data []byte) (string, error) {
	return s.pdf.ExtractText(data)
}

// RemoteRecognizer is the consumer side contract for an HTTP OCR
// service that accepts whole documents.
type RemoteRecognizer interface {
	RecognizePDF(pdfData []byte) (string, error)
}

// remoteOCRSource ships the raw document to a remote OCR service
// instead of rasterizing and recognizing locally.
type remoteOCRSource struct {
	client RemoteRecognizer
}

func NewRemoteOCRSource(client RemoteRecognizer) TextSource {
	return &remoteOCRSource{client: client}
}

func (s *remoteOCRSource) Name() string {
	return "remote-ocr"
}

func (s *remoteOCRSource) AcquireText(data []byte) (string, error) {
	return s.client.RecognizePDF(data)
}

// ocrSource pulls the page images out of the PDF and runs each through
// the OCR engine.
type ocrSource struct {
	pdf PDFProcessor
	ocr OCREngine
}

func NewOCRSource(pdf PDFProcessor, ocr OCREngine) TextSource {
	return &ocrSource{
		pdf: pdf,
		ocr: ocr,
	}
}

func (s *ocrSource) Name() string {
	return "pdf-ocr"
}

func (s *ocrSource) AcquireText(data []byte) (string, error) {
	images, err := s.pdf.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("extract page images: %w", err)
	}
	if len(images) == 0 {
		return "", dto.ErrNoPageImages
	}

	var textBuilder strings.Builder
	for i, img := range images {
		pageText, confidence, err := s.ocr.RecognizeImage(img)
		if err != nil {
			log.Printf("Warning: OCR failed on page image %d: %v", i+1, err)
			continue
		}
		log.Printf("OCR page image %d: %d chars, confidence %.1f", i+1, len(pageText), confidence)

		textBuilder.WriteString("\n")
		textBuilder.WriteString(pageText)
	}
	return textBuilder.String(), nil
}
