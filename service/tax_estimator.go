package service

import (
	"math"

	"github.com/paystublab/analyzer/dto"
)

// taxBracket is one slice of the progressive schedule. Width is the
// income span the bracket covers, not its upper bound.
type taxBracket struct {
	width float64
	rate  float64
}

// federalBrackets approximates the single-filer federal schedule.
var federalBrackets = []taxBracket{
	{11000, 0.10},
	{33725, 0.12},
	{50650, 0.22},
	{86725, 0.24},
	{49150, 0.32},
	{346875, 0.35},
	{math.MaxFloat64, 0.37},
}

// withholdingTolerance is the per-period dollar band treated as on track.
const withholdingTolerance = 50.0

// EstimateAnnualFederalTax runs annual taxable income through the
// bracket widths and totals the slice taxes.
func EstimateAnnualFederalTax(taxable float64) float64 {
	if taxable <= 0 {
		return 0
	}

	tax := 0.0
	remaining := taxable
	for _, bracket := range federalBrackets {
		portion := math.Min(remaining, bracket.width)
		tax += portion * bracket.rate
		remaining -= portion
		if remaining <= 0 {
			break
		}
	}
	return tax
}

// CheckWithholding annualizes the entered figures, estimates the federal
// tax owed on that income and compares the per-period share against what
// the stub actually withheld. Differences inside the tolerance band read
// as on track.
func CheckWithholding(fields dto.FieldSet, periods int) dto.WithholdingCheck {
	annualTaxable := (fields.GrossPay - fields.PreTax) * float64(periods)
	annualTax := EstimateAnnualFederalTax(annualTaxable)
	perPeriod := annualTax / float64(periods)
	difference := fields.FederalTax - perPeriod

	verdict := dto.VerdictOnTrack
	switch {
	case difference > withholdingTolerance:
		verdict = dto.VerdictOverWithholding
	case difference < -withholdingTolerance:
		verdict = dto.VerdictUnderWithholding
	}

	return dto.WithholdingCheck{
		PeriodsPerYear:      periods,
		AnnualTaxableIncome: annualTaxable,
		EstimatedAnnualTax:  annualTax,
		EstimatedPerPeriod:  perPeriod,
		ActualPerPeriod:     fields.FederalTax,
		Difference:          difference,
		Verdict:             verdict,
	}
}
