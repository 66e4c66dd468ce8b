package service

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paystublab/analyzer/dto"
)

type fakeSource struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) AcquireText(data []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakePDF struct {
	text    string
	images  []image.Image
	textErr error
	imgErr  error
}

func (f *fakePDF) ExtractText(data []byte) (string, error) {
	return f.text, f.textErr
}

func (f *fakePDF) ExtractImages(data []byte) ([]image.Image, error) {
	return f.images, f.imgErr
}

type fakeEngine struct {
	pages []string
	err   error
	calls int
}

func (f *fakeEngine) RecognizeImage(img image.Image) (string, float64, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	text := ""
	if f.calls < len(f.pages) {
		text = f.pages[f.calls]
	}
	f.calls++
	return text, 91.5, nil
}

const richText = "Gross Pay: $2,500.00\nFederal Tax 150.25\nNet Pay $1,800.00 for this period\n"

func TestAcquireTextPrimarySufficient(t *testing.T) {
	primary := &fakeSource{name: "pdf-text", text: richText}
	fallback := &fakeSource{name: "pdf-ocr", text: "should never be used"}
	acquirer := NewTextAcquirer(primary, fallback, DefaultMinTextLength)

	text, report := acquirer.AcquireText([]byte("%PDF"))

	assert.Equal(t, richText, text)
	assert.Equal(t, "pdf-text", report.Method)
	assert.False(t, report.FallbackFired)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, len(richText), report.TextLength)
}

func TestAcquireTextFallsBackOnThinText(t *testing.T) {
	primary := &fakeSource{name: "pdf-text", text: "   \n "}
	fallback := &fakeSource{name: "pdf-ocr", text: richText}
	acquirer := NewTextAcquirer(primary, fallback, DefaultMinTextLength)

	text, report := acquirer.AcquireText([]byte("%PDF"))

	assert.Equal(t, richText, text)
	assert.Equal(t, "pdf-ocr", report.Method)
	assert.True(t, report.FallbackFired)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestAcquireTextKeepsLongerResult(t *testing.T) {
	// fallback fires but produces even less than the thin text layer
	primary := &fakeSource{name: "pdf-text", text: "Gross Pay 100"}
	fallback := &fakeSource{name: "pdf-ocr", text: "Gr"}
	acquirer := NewTextAcquirer(primary, fallback, DefaultMinTextLength)

	text, report := acquirer.AcquireText([]byte("%PDF"))

	assert.Equal(t, "Gross Pay 100", text)
	assert.Equal(t, "pdf-text", report.Method)
	assert.True(t, report.FallbackFired)
}

func TestAcquireTextGateBoundary(t *testing.T) {
	fallback := &fakeSource{name: "pdf-ocr", text: richText}
	acquirer := NewTextAcquirer(&fakeSource{name: "pdf-text", text: strings.Repeat("a", 50)}, fallback, 50)

	_, report := acquirer.AcquireText(nil)
	assert.False(t, report.FallbackFired)
	assert.Equal(t, 0, fallback.calls)

	acquirer = NewTextAcquirer(&fakeSource{name: "pdf-text", text: strings.Repeat("a", 49)}, fallback, 50)

	_, report = acquirer.AcquireText(nil)
	assert.True(t, report.FallbackFired)
	assert.Equal(t, 1, fallback.calls)
}

func TestAcquireTextCustomThreshold(t *testing.T) {
	fallback := &fakeSource{name: "pdf-ocr", text: richText}
	acquirer := NewTextAcquirer(&fakeSource{name: "pdf-text", text: "short but enough"}, fallback, 10)

	_, report := acquirer.AcquireText(nil)
	assert.False(t, report.FallbackFired)

	// zero falls back to the default gate
	acquirer = NewTextAcquirer(&fakeSource{name: "pdf-text", text: "short but enough"}, fallback, 0)

	_, report = acquirer.AcquireText(nil)
	assert.True(t, report.FallbackFired)
}

func TestAcquireTextPrimaryFailure(t *testing.T) {
	primary := &fakeSource{name: "pdf-text", err: errors.New("broken xref table")}
	fallback := &fakeSource{name: "pdf-ocr", text: richText}
	acquirer := NewTextAcquirer(primary, fallback, DefaultMinTextLength)

	text, report := acquirer.AcquireText(nil)

	assert.Equal(t, richText, text)
	assert.Equal(t, "pdf-ocr", report.Method)
	assert.Contains(t, report.Warnings, "text_layer_extraction_failed")
}

func TestAcquireTextBothFail(t *testing.T) {
	primary := &fakeSource{name: "pdf-text", err: errors.New("broken xref table")}
	fallback := &fakeSource{name: "pdf-ocr", err: errors.New("tesseract missing")}
	acquirer := NewTextAcquirer(primary, fallback, DefaultMinTextLength)

	text, report := acquirer.AcquireText(nil)

	assert.Equal(t, "", text)
	assert.True(t, report.FallbackFired)
	assert.Contains(t, report.Warnings, "text_layer_extraction_failed")
	assert.Contains(t, report.Warnings, "ocr_extraction_failed")
	assert.Equal(t, 0, report.TextLength)
}

func TestNormalizeText(t *testing.T) {
	// ligatures and fullwidth forms fold to ASCII
	assert.Equal(t, "Office", normalizeText("Oﬃce"))
	assert.Equal(t, "Pay 250", normalizeText("Pay 250"))

	// carriage returns drop, newlines and tabs stay
	assert.Equal(t, "Gross 100\nNet\t80", normalizeText("Gross 100\r\nNet\t80"))
}

func TestTextLayerSourceDelegates(t *testing.T) {
	source := NewTextLayerSource(&fakePDF{text: "hello stub"})

	assert.Equal(t, "pdf-text", source.Name())

	text, err := source.AcquireText(nil)
	assert.NoError(t, err)
	assert.Equal(t, "hello stub", text)
}

func TestOCRSourceCombinesPages(t *testing.T) {
	pdf := &fakePDF{images: []image.Image{
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}}
	engine := &fakeEngine{pages: []string{"page one", "page two"}}
	source := NewOCRSource(pdf, engine)

	assert.Equal(t, "pdf-ocr", source.Name())

	text, err := source.AcquireText(nil)
	assert.NoError(t, err)
	assert.Equal(t, "\npage one\npage two", text)
	assert.Equal(t, 2, engine.calls)
}

func TestOCRSourceNoImages(t *testing.T) {
	source := NewOCRSource(&fakePDF{}, &fakeEngine{})

	_, err := source.AcquireText(nil)
	assert.ErrorIs(t, err, dto.ErrNoPageImages)
}

func TestOCRSourceSkipsFailedPages(t *testing.T) {
	pdf := &fakePDF{images: []image.Image{image.NewRGBA(image.Rect(0, 0, 1, 1))}}
	source := NewOCRSource(pdf, &fakeEngine{err: errors.New("engine crashed")})

	text, err := source.AcquireText(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}
