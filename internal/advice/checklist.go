package advice

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Checklist returns household-level hints: credits the household may have
// overlooked and headroom left under the donation and insurance caps. Unlike
// Advise it may return an empty list.
func Checklist(input domain.TaxInput, household domain.Household, result *domain.TaxResult, rules *domain.RuleSet) []string {
	var hints []string
	status := input.FilingStatus
	s := rules.Special

	if household.Elders70 == 0 {
		hints = append(hints, "If you support a lineal ascendant aged 70 or over, you can claim the higher elder exemption.")
	}
	if household.Dependents == 0 {
		hints = append(hints, "Check whether you have dependents you can claim to increase your exemption.")
	}

	if input.Salary > 0 {
		hints = append(hints, fmt.Sprintf("Check whether the salary special deduction has reached its cap (%s per person).", money(s.Salary)))
	}
	if input.PreschoolFirst == 0 && input.PreschoolMore == 0 {
		hints = append(hints, "If you have children aged 6 or under, you can claim the preschool special deduction.")
	}
	if input.Disabled == 0 {
		hints = append(hints, fmt.Sprintf("If a family member has a disability, you can claim the disability special deduction (%s per person).", money(s.Disability)))
	}
	if input.LTC == 0 {
		hints = append(hints, fmt.Sprintf("If a family member needs long-term care, you can claim the long-term care special deduction (%s per person).", money(s.LongTermCare)))
	}

	if result.GeneralDeduction == rules.StandardDeduction(status) {
		hints = append(hints, "You are using the standard deduction; switch to itemizing if your itemizable expenses are higher.")
	} else {
		hints = append(hints, "You are itemizing; switch to the standard deduction if your expenses are lower.")
	}

	if input.RentSpecial > 0 && input.MortgageInterest > 0 {
		hints = append(hints, "The rent deduction and the mortgage interest deduction cannot be used together; confirm which option is better for you.")
	}

	if limit := calculation.DonationLimit(result.TotalIncome, rules); limit > 0 && input.Donation < limit {
		pct := rules.Deduction.DonationLimitRate.Mul(decimal.NewFromInt(100))
		hints = append(hints, fmt.Sprintf("Donations are deductible up to %s%% of total income (%s); you still have room to claim more.",
			pct.String(), money(limit)))
	}
	if limit := calculation.InsuranceLimit(status, household, rules); limit > 0 && input.Insurance < limit {
		hints = append(hints, fmt.Sprintf("Personal insurance premiums are deductible up to %s; you can still add premiums.", money(limit)))
	}

	if result.Refund > 0 {
		hints = append(hints, fmt.Sprintf("You have a refund of %s; consider adjusting your withholding so your money is not tied up with the government.",
			money(result.Refund)))
	}
	return hints
}
