package calculation

import (
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
)

// twoBracketRules is a compact rule set with a 560,000 / unbounded schedule
func twoBracketRules() *domain.RuleSet {
	return &domain.RuleSet{
		Exemption: domain.ExemptionRules{PerPerson: 97000, Elder70: 145500},
		Deduction: domain.DeductionRules{
			StandardSingle:    124000,
			StandardCouple:    248000,
			DonationLimitRate: decimal.NewFromFloat(0.2),
			MortgageInterest:  300000,
		},
		Special: domain.SpecialRules{
			Salary:              218000,
			SavingsInvestment:   270000,
			PreschoolFirst:      150000,
			PreschoolSecondPlus: 225000,
			Disability:          218000,
			LongTermCare:        120000,
			Rent:                180000,
		},
		Brackets: []domain.TaxBracket{
			{UpTo: 560000, Rate: decimal.NewFromFloat(0.05), Diff: 0},
			{UpTo: domain.NoUpperBound, Rate: decimal.NewFromFloat(0.12), Diff: 39200},
		},
		IncomeYear: "2023",
		FilingYear: "2024",
	}
}

// fiveBracketRules mirrors the shipped 2024 income-year schedule
func fiveBracketRules() *domain.RuleSet {
	r := twoBracketRules()
	r.Deduction.StandardSingle = 131000
	r.Deduction.StandardCouple = 262000
	r.Brackets = []domain.TaxBracket{
		{UpTo: 590000, Rate: decimal.NewFromFloat(0.05), Diff: 0},
		{UpTo: 1330000, Rate: decimal.NewFromFloat(0.12), Diff: 41300},
		{UpTo: 2660000, Rate: decimal.NewFromFloat(0.20), Diff: 147700},
		{UpTo: 4980000, Rate: decimal.NewFromFloat(0.30), Diff: 413700},
		{UpTo: domain.NoUpperBound, Rate: decimal.NewFromFloat(0.40), Diff: 911700},
	}
	return r
}
