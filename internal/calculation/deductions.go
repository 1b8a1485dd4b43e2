package calculation

import (
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Exemption returns the personal exemption. Every counted person gets the base
// amount and each elder aged 70+ adds the difference up to the elder amount.
func Exemption(status domain.FilingStatus, household domain.Household, rules *domain.RuleSet) int64 {
	persons := household.Persons(status)
	base := persons * rules.Exemption.PerPerson
	extra := int64(household.Elders70) * rules.ElderTopUp()
	return base + extra
}

// Itemized sums the declared itemizable expenses. No per-category cap is applied
// here; the caps only inform advice.
func Itemized(input domain.TaxInput) int64 {
	return input.Donation +
		input.Insurance +
		input.MedicalBirth +
		input.DisasterLoss +
		input.MortgageInterest +
		input.HouseRentItemized
}

// GeneralDeduction is the greater of the standard deduction and the itemized total
func GeneralDeduction(status domain.FilingStatus, itemized int64, rules *domain.RuleSet) int64 {
	return max(rules.StandardDeduction(status), itemized)
}

// SpecialDeductions sums the special deductions: capped salary, savings and rent,
// plus the per-head preschool, disability and long-term care amounts.
func SpecialDeductions(input domain.TaxInput, rules *domain.RuleSet) int64 {
	s := rules.Special

	special := min(input.Salary, input.FilingStatus.SalaryEarners()*s.Salary)
	special += min(input.SavingsInvest, s.SavingsInvestment)

	special += int64(input.PreschoolFirst) * s.PreschoolFirst
	special += int64(input.PreschoolMore) * s.PreschoolSecondPlus

	special += int64(input.Disabled) * s.Disability
	special += int64(input.LTC) * s.LongTermCare

	special += min(input.RentSpecial, s.Rent)
	return special
}
