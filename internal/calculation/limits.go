package calculation

import (
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
)

// DonationLimit is the deductible donation ceiling: total income times the
// donation limit rate, truncated to whole currency.
func DonationLimit(totalIncome int64, rules *domain.RuleSet) int64 {
	return decimal.NewFromInt(totalIncome).Mul(rules.Deduction.DonationLimitRate).IntPart()
}

// InsuranceLimit scales the per-person insurance premium cap by the number of
// insured persons in the household.
func InsuranceLimit(status domain.FilingStatus, household domain.Household, rules *domain.RuleSet) int64 {
	return rules.Deduction.InsurancePerPerson * household.Persons(status)
}
