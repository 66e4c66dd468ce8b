package utils

// Field identifies one semantic figure the pay-stub extractor looks for.
type Field string

const (
	FieldGross          Field = "gross"
	FieldNet            Field = "net"
	FieldFederal        Field = "federal"
	FieldState          Field = "state"
	FieldSocialSecurity Field = "social_security"
	FieldMedicare       Field = "medicare"
	FieldRegularHours   Field = "regular_hours"
	FieldOvertimeHours  Field = "overtime_hours"
	FieldRegularAmount  Field = "regular_amount"
	FieldOvertimeAmount Field = "overtime_amount"
)

// LabelDictionary maps each field to the label phrases that may announce it
// on a stub. Phrase order matters: when two candidates score the same, the
// one found first wins.
type LabelDictionary map[Field][]string

var defaultLabels = LabelDictionary{
	FieldGross:          {"Gross Pay", "Gross Earnings", "Total Gross", "Gross"},
	FieldNet:            {"Net Pay", "Net Amount", "Net Pay to Employee", "Pay After Deductions"},
	FieldFederal:        {"Federal Withholding", "Federal Tax", "Fed Withheld", "Federal Income Tax"},
	FieldState:          {"State Withholding", "State Tax", "State Income Tax"},
	FieldSocialSecurity: {"Social Security", "FICA Social Security", "Social Sec"},
	FieldMedicare:       {"Medicare", "FICA Medicare"},
	FieldRegularHours:   {"Regular Hours", "Hours Regular", "Reg Hrs"},
	FieldOvertimeHours:  {"Overtime Hours", "OT Hours", "Overtime Hrs"},
	FieldRegularAmount:  {"Regular Pay", "Regular Earnings"},
	FieldOvertimeAmount: {"Overtime Pay", "OT Pay", "Overtime Earnings"},
}

// DefaultLabels returns the built-in label dictionary covering the common
// US pay-stub layouts. Callers must treat it as read-only.
func DefaultLabels() LabelDictionary {
	return defaultLabels
}
