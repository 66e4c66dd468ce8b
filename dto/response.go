package dto

import "errors"

// Custom errors
var (
	ErrMissingFile         = errors.New("pay stub file is required")
	ErrUnsupportedFileType = errors.New("invalid file type. Supported: PDF")
	ErrMissingFrequency    = errors.New("pay frequency is required")
	ErrUnknownFrequency    = errors.New("unknown pay frequency")
	ErrNoPageImages        = errors.New("no page images found in document")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalyzeResponse is the full extraction result for one stub.
type AnalyzeResponse struct {
	Fields       map[string]ExtractedField `json:"fields"`
	Defaults     FieldSet                  `json:"defaults"`
	EmployeeName string                    `json:"employee_name,omitempty"`
	PayPeriod    string                    `json:"pay_period,omitempty"`
	TextPreview  string                    `json:"text_preview"`
	Acquisition  AcquisitionReport         `json:"acquisition"`
	Verification *VerificationCode         `json:"verification,omitempty"`
	ProcessedAt  string                    `json:"processed_at"`
}

// SummaryResponse is the computed pay period summary.
type SummaryResponse struct {
	Summary     PaySummary       `json:"summary"`
	Withholding WithholdingCheck `json:"withholding"`
	Chart       []ChartSegment   `json:"chart"`
}
