package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paystublab/analyzer/dto"
)

func TestEstimateAnnualFederalTaxBracketEdges(t *testing.T) {
	assert.Equal(t, 0.0, EstimateAnnualFederalTax(0))
	assert.Equal(t, 0.0, EstimateAnnualFederalTax(-500))

	// exact bracket boundaries
	assert.InDelta(t, 1100.0, EstimateAnnualFederalTax(11000), 0.01)
	assert.InDelta(t, 5147.0, EstimateAnnualFederalTax(44725), 0.01)
	assert.InDelta(t, 16290.0, EstimateAnnualFederalTax(95375), 0.01)

	// mid-bracket income
	assert.InDelta(t, 6307.5, EstimateAnnualFederalTax(50000), 0.01)

	// income reaching the open-ended top bracket
	assert.InDelta(t, 182332.0, EstimateAnnualFederalTax(600000), 0.01)
}

func TestCheckWithholdingVerdicts(t *testing.T) {
	// annual taxable 26000 puts 2900 of federal tax across 26 periods
	base := dto.FieldSet{GrossPay: 1000}

	over := base
	over.FederalTax = 300
	check := CheckWithholding(over, 26)
	assert.Equal(t, dto.VerdictOverWithholding, check.Verdict)
	assert.InDelta(t, 111.54, check.EstimatedPerPeriod, 0.01)
	assert.InDelta(t, 188.46, check.Difference, 0.01)
	assert.Equal(t, 26, check.PeriodsPerYear)
	assert.Equal(t, 26000.0, check.AnnualTaxableIncome)

	under := base
	under.FederalTax = 20
	assert.Equal(t, dto.VerdictUnderWithholding, CheckWithholding(under, 26).Verdict)

	onTrack := base
	onTrack.FederalTax = 111.54
	assert.Equal(t, dto.VerdictOnTrack, CheckWithholding(onTrack, 26).Verdict)
}

func TestCheckWithholdingPreTaxReducesTaxable(t *testing.T) {
	withPreTax := dto.FieldSet{GrossPay: 1000, PreTax: 200}
	check := CheckWithholding(withPreTax, 26)

	assert.Equal(t, 20800.0, check.AnnualTaxableIncome)
	assert.InDelta(t, 2276.0, check.EstimatedAnnualTax, 0.01)
}

func TestCheckWithholdingToleranceBoundary(t *testing.T) {
	// taxable 6000 stays in the first bracket: 600 annual, 50 per period
	fields := dto.FieldSet{GrossPay: 500, FederalTax: 100}
	check := CheckWithholding(fields, 12)

	assert.InDelta(t, 50.0, check.EstimatedPerPeriod, 1e-9)
	// a difference of exactly 50 stays on track
	assert.Equal(t, dto.VerdictOnTrack, check.Verdict)

	fields.FederalTax = 0
	assert.Equal(t, dto.VerdictOnTrack, CheckWithholding(fields, 12).Verdict)

	fields.FederalTax = 100.01
	assert.Equal(t, dto.VerdictOverWithholding, CheckWithholding(fields, 12).Verdict)
}
