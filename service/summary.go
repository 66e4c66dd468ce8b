package service

import "github.com/paystublab/analyzer/dto"

// BuildSummary totals the deductions for one pay period. The take-home
// estimate is gross minus taxes and both deduction buckets, and can go
// negative when the entered figures do not add up.
func BuildSummary(fields dto.FieldSet) dto.PaySummary {
	totalTaxes := fields.FederalTax + fields.StateTax + fields.SocialSecurity + fields.Medicare
	takeHome := fields.GrossPay - totalTaxes - fields.PreTax - fields.PostTax

	return dto.PaySummary{
		GrossPay:          fields.GrossPay,
		TotalTaxes:        totalTaxes,
		PreTax:            fields.PreTax,
		PostTax:           fields.PostTax,
		NetPay:            fields.NetPay,
		EstimatedTakeHome: takeHome,
	}
}

// BuildChart splits gross pay into the three segments the frontend
// renders. A negative take-home shows as an empty segment.
func BuildChart(summary dto.PaySummary) []dto.ChartSegment {
	takeHome := summary.EstimatedTakeHome
	if takeHome < 0 {
		takeHome = 0
	}

	return []dto.ChartSegment{
		{Label: "Taxes", Amount: summary.TotalTaxes},
		{Label: "Pre-tax contributions", Amount: summary.PreTax},
		{Label: "Take-home", Amount: takeHome},
	}
}
