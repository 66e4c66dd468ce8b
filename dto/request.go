package dto

import (
	"mime/multipart"
	"strings"
)

// AnalyzeRequest represents an uploaded pay stub
type AnalyzeRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the request
func (r *AnalyzeRequest) Validate() error {
	if r.File == nil {
		return ErrMissingFile
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return ErrUnsupportedFileType
	}
	return nil
}

// SummaryRequest carries the reviewed figures the summary math runs on.
// The figures usually start from the extractor's defaults and may have
// been corrected by hand.
type SummaryRequest struct {
	Fields       FieldSet     `json:"fields"`
	PayFrequency PayFrequency `json:"pay_frequency"`
}

// Validate performs basic validation on the request
func (r *SummaryRequest) Validate() error {
	if r.PayFrequency == "" {
		return ErrMissingFrequency
	}
	if _, err := r.PayFrequency.PeriodsPerYear(); err != nil {
		return err
	}
	return nil
}
