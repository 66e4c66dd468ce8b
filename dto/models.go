package dto

// PayFrequency is how often the employee is paid.
type PayFrequency string

const (
	FrequencyWeekly      PayFrequency = "weekly"
	FrequencyBiweekly    PayFrequency = "biweekly"
	FrequencySemimonthly PayFrequency = "semimonthly"
	FrequencyMonthly     PayFrequency = "monthly"
)

// PeriodsPerYear converts the frequency into pay periods per year.
func (f PayFrequency) PeriodsPerYear() (int, error) {
	switch f {
	case FrequencyWeekly:
		return 52, nil
	case FrequencyBiweekly:
		return 26, nil
	case FrequencySemimonthly:
		return 24, nil
	case FrequencyMonthly:
		return 12, nil
	}
	return 0, ErrUnknownFrequency
}

// ExtractedField is one figure pulled off the stub, with enough context to
// show the user where it came from.
type ExtractedField struct {
	Raw    string  `json:"raw"`
	Value  float64 `json:"value"`
	Parsed bool    `json:"parsed"`
	Window string  `json:"window"`
	Score  int     `json:"score"`
}

// FieldSet is the editable set of figures the summary math runs on.
// Pre-tax contributions and post-tax deductions carry no stub label, so
// they stay zero until the caller fills them in.
type FieldSet struct {
	GrossPay       float64 `json:"gross_pay"`
	RegularPay     float64 `json:"regular_pay"`
	OvertimePay    float64 `json:"overtime_pay"`
	NetPay         float64 `json:"net_pay"`
	FederalTax     float64 `json:"federal_tax"`
	StateTax       float64 `json:"state_tax"`
	SocialSecurity float64 `json:"social_security"`
	Medicare       float64 `json:"medicare"`
	PreTax         float64 `json:"pre_tax_contributions"`
	PostTax        float64 `json:"post_tax_deductions"`
}

// AcquisitionReport describes how the stub text was obtained.
type AcquisitionReport struct {
	Method        string   `json:"method"`
	FallbackFired bool     `json:"fallback_fired"`
	TextLength    int      `json:"text_length"`
	Warnings      []string `json:"warnings,omitempty"`
}

// VerificationCode is a machine readable code found on a stub page.
type VerificationCode struct {
	Format  string `json:"format"`
	Payload string `json:"payload"`
	Page    int    `json:"page"`
}

// PaySummary totals one pay period.
type PaySummary struct {
	GrossPay          float64 `json:"gross_pay"`
	TotalTaxes        float64 `json:"total_taxes"`
	PreTax            float64 `json:"pre_tax_contributions"`
	PostTax           float64 `json:"post_tax_deductions"`
	NetPay            float64 `json:"net_pay"`
	EstimatedTakeHome float64 `json:"estimated_take_home"`
}

// WithholdingVerdict classifies actual federal withholding against the
// bracket estimate.
type WithholdingVerdict string

const (
	VerdictOverWithholding  WithholdingVerdict = "over_withholding"
	VerdictUnderWithholding WithholdingVerdict = "under_withholding"
	VerdictOnTrack          WithholdingVerdict = "on_track"
)

type WithholdingCheck struct {
	PeriodsPerYear      int                `json:"periods_per_year"`
	AnnualTaxableIncome float64            `json:"annual_taxable_income"`
	EstimatedAnnualTax  float64            `json:"estimated_annual_tax"`
	EstimatedPerPeriod  float64            `json:"estimated_per_period"`
	ActualPerPeriod     float64            `json:"actual_per_period"`
	Difference          float64            `json:"difference"`
	Verdict             WithholdingVerdict `json:"verdict"`
}

// ChartSegment is one slice of the gross pay breakdown.
type ChartSegment struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
