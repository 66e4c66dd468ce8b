package service

import (
	"image"
	"log"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/paystublab/analyzer/dto"
	"github.com/paystublab/analyzer/utils"
)

// previewLimit caps how much raw text the analyze response carries.
const previewLimit = 2000

// PaystubService turns an uploaded stub into extracted figures plus the
// supporting context the review screen needs.
type PaystubService struct {
	acquirer *TextAcquirer
	pdf      PDFProcessor
	labels   utils.LabelDictionary
}

func NewPaystubService(acquirer *TextAcquirer, pdf PDFProcessor) *PaystubService {
	return &PaystubService{
		acquirer: acquirer,
		pdf:      pdf,
		labels:   utils.DefaultLabels(),
	}
}

// Analyze acquires the stub text, extracts every known field and
// assembles the response. No stage is fatal: a stub that yields nothing
// comes back with empty fields and zero defaults.
func (s *PaystubService) Analyze(data []byte) *dto.AnalyzeResponse {
	text, report := s.acquirer.AcquireText(data)

	matches := utils.ExtractFields(text, s.labels)
	fields := make(map[string]dto.ExtractedField, len(matches))
	for field, match := range matches {
		extracted := dto.ExtractedField{
			Raw:    match.Raw,
			Window: match.Window,
			Score:  match.Score,
		}
		if value, err := utils.ParseAmount(match.Raw); err != nil {
			log.Printf("Warning: keeping raw token for %s: %v", field, err)
		} else {
			extracted.Value = value
			extracted.Parsed = true
		}
		fields[string(field)] = extracted
	}

	return &dto.AnalyzeResponse{
		Fields:       fields,
		Defaults:     buildDefaults(fields),
		EmployeeName: utils.ExtractEmployeeName(text),
		PayPeriod:    utils.ExtractPayPeriod(text),
		TextPreview:  textPreview(text),
		Acquisition:  report,
		Verification: s.detectVerificationCode(data),
		ProcessedAt:  time.Now().Format(time.RFC3339),
	}
}

// buildDefaults seeds the editable field set from whatever parsed.
// Missing fields stay zero, as do the two deduction buckets no stub
// label covers.
func buildDefaults(fields map[string]dto.ExtractedField) dto.FieldSet {
	value := func(field utils.Field) float64 {
		if f, ok := fields[string(field)]; ok && f.Parsed {
			return f.Value
		}
		return 0
	}

	return dto.FieldSet{
		GrossPay:       value(utils.FieldGross),
		RegularPay:     value(utils.FieldRegularAmount),
		OvertimePay:    value(utils.FieldOvertimeAmount),
		NetPay:         value(utils.FieldNet),
		FederalTax:     value(utils.FieldFederal),
		StateTax:       value(utils.FieldState),
		SocialSecurity: value(utils.FieldSocialSecurity),
		Medicare:       value(utils.FieldMedicare),
	}
}

func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit])
}

// detectVerificationCode scans the stub's page images for a QR code.
// Some payroll providers print one so the stub can be verified later.
// Best effort: most stubs have none.
func (s *PaystubService) detectVerificationCode(data []byte) *dto.VerificationCode {
	images, err := s.pdf.ExtractImages(data)
	if err != nil {
		log.Printf("Verification scan skipped: %v", err)
		return nil
	}

	qrReader := qrcode.NewQRCodeReader()
	for i, img := range images {
		payload := decodeQR(qrReader, img)
		if payload == "" {
			continue
		}
		log.Printf("QR code decoded on page image %d, length: %d bytes", i+1, len(payload))
		return &dto.VerificationCode{
			Format:  "qr",
			Payload: payload,
			Page:    i + 1,
		}
	}
	return nil
}

func decodeQR(reader gozxing.Reader, img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return ""
	}
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return ""
	}
	return result.GetText()
}
