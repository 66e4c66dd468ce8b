package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystublab/analyzer/dto"
)

func newTestService(primaryText string) *PaystubService {
	primary := &fakeSource{name: "pdf-text", text: primaryText}
	fallback := &fakeSource{name: "pdf-ocr", text: ""}
	pdf := &fakePDF{imgErr: errors.New("no images in fixture")}
	return NewPaystubService(NewTextAcquirer(primary, fallback, DefaultMinTextLength), pdf)
}

func TestAnalyzeExtractsAndSeedsDefaults(t *testing.T) {
	text := "Employee Name: John Doe\nPay Period: October 2025\nGross Pay: $2,500.00\nFederal Income Tax 150.25\nNet Pay $1,800.00\n"
	svc := newTestService(text)

	resp := svc.Analyze([]byte("%PDF"))
	require.NotNil(t, resp)

	gross, ok := resp.Fields["gross"]
	require.True(t, ok)
	assert.Equal(t, "2,500.00", gross.Raw)
	assert.True(t, gross.Parsed)
	assert.Equal(t, 2500.0, gross.Value)
	assert.Equal(t, 100, gross.Score)

	assert.Equal(t, 2500.0, resp.Defaults.GrossPay)
	assert.Equal(t, 150.25, resp.Defaults.FederalTax)
	assert.Equal(t, 1800.0, resp.Defaults.NetPay)
	assert.Equal(t, 0.0, resp.Defaults.PreTax)
	assert.Equal(t, 0.0, resp.Defaults.StateTax)

	assert.Equal(t, "John Doe", resp.EmployeeName)
	assert.Equal(t, "October 2025", resp.PayPeriod)
	assert.Equal(t, "pdf-text", resp.Acquisition.Method)
	assert.False(t, resp.Acquisition.FallbackFired)
	assert.Contains(t, resp.TextPreview, "Gross Pay")
	assert.Nil(t, resp.Verification)
	assert.NotEmpty(t, resp.ProcessedAt)
}

func TestAnalyzeEmptyStub(t *testing.T) {
	svc := newTestService("")

	resp := svc.Analyze(nil)

	assert.Empty(t, resp.Fields)
	assert.Equal(t, dto.FieldSet{}, resp.Defaults)
	assert.True(t, resp.Acquisition.FallbackFired)
	assert.Equal(t, "", resp.TextPreview)
	assert.Equal(t, "", resp.EmployeeName)
}

func TestTextPreviewTruncates(t *testing.T) {
	long := strings.Repeat("x", previewLimit+500)
	assert.Len(t, textPreview(long), previewLimit)
	assert.Equal(t, "short", textPreview("short"))
}
