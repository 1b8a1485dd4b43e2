package domain

// TaxResult contains the figures produced by one evaluation
type TaxResult struct {
	TotalIncome      int64 `json:"total_income"`
	Exemption        int64 `json:"exemption"`
	GeneralDeduction int64 `json:"general_deduction"`
	Special          int64 `json:"special"`
	NetIncome        int64 `json:"net_income"`
	TaxPayable       int64 `json:"tax_payable"`
	FinalTax         int64 `json:"final_tax"` // additional tax due, 0 if none
	Refund           int64 `json:"refund"`    // refundable amount, 0 if none

	IncomeYear string `json:"income_year"`
	FilingYear string `json:"filing_year"`
}

// Balance returns the signed settlement: positive when tax is owed, negative on refund.
func (r TaxResult) Balance() int64 {
	return r.FinalTax - r.Refund
}

// LineItem is a labeled figure of a result, in display order
type LineItem struct {
	Key    string
	Label  string
	Amount int64
}

// LineItems lists the result figures in the order they appear on a report
func (r TaxResult) LineItems() []LineItem {
	return []LineItem{
		{Key: "total_income", Label: "Total income", Amount: r.TotalIncome},
		{Key: "exemption", Label: "Exemption", Amount: r.Exemption},
		{Key: "general_deduction", Label: "General deduction (greater of)", Amount: r.GeneralDeduction},
		{Key: "special", Label: "Special deductions", Amount: r.Special},
		{Key: "net_income", Label: "Net taxable income", Amount: r.NetIncome},
		{Key: "tax_payable", Label: "Tax payable", Amount: r.TaxPayable},
		{Key: "final_tax", Label: "Additional tax due", Amount: r.FinalTax},
		{Key: "refund", Label: "Refund", Amount: r.Refund},
	}
}
