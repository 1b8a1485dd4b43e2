package domain

import (
	"github.com/shopspring/decimal"
)

// NoUpperBound is the up_to sentinel that marks the top bracket of a schedule.
const NoUpperBound int64 = -1

// RuleSet contains the parameterized tax rules for one income year.
// It is loaded once from a rule document and treated as read-only afterwards.
type RuleSet struct {
	Exemption  ExemptionRules `yaml:"exemption" json:"exemption"`
	Deduction  DeductionRules `yaml:"deduction" json:"deduction"`
	Special    SpecialRules   `yaml:"special" json:"special"`
	Brackets   []TaxBracket   `yaml:"brackets" json:"brackets"`
	IncomeYear string         `yaml:"income_year" json:"income_year"`
	FilingYear string         `yaml:"year" json:"year"`
}

// ExemptionRules contains per-person exemption amounts
type ExemptionRules struct {
	PerPerson int64 `yaml:"per_person" json:"per_person"`
	Elder70   int64 `yaml:"elder70" json:"elder70"` // lineal ascendants aged 70 and over
}

// DeductionRules contains standard deduction amounts and itemized caps
type DeductionRules struct {
	StandardSingle    int64           `yaml:"standard_single" json:"standard_single"`
	StandardCouple    int64           `yaml:"standard_couple" json:"standard_couple"`
	DonationLimitRate decimal.Decimal `yaml:"donation_limit_rate" json:"donation_limit_rate"`
	MortgageInterest  int64           `yaml:"mortgage_interest" json:"mortgage_interest"`

	// InsurancePerPerson is the headcount-scaled insurance premium cap. It only bounds
	// what-if simulations; zero means insurance cannot be simulated.
	InsurancePerPerson int64 `yaml:"insurance_per_person,omitempty" json:"insurance_per_person,omitempty"`
}

// SpecialRules contains special deduction caps and per-head rates
type SpecialRules struct {
	Salary              int64 `yaml:"salary" json:"salary"` // per earner
	SavingsInvestment   int64 `yaml:"savings_investment" json:"savings_investment"`
	PreschoolFirst      int64 `yaml:"preschool_first" json:"preschool_first"`
	PreschoolSecondPlus int64 `yaml:"preschool_second_plus" json:"preschool_second_plus"`
	Disability          int64 `yaml:"disability" json:"disability"`
	LongTermCare        int64 `yaml:"long_term_care" json:"long_term_care"`
	Rent                int64 `yaml:"rent" json:"rent"`
}

// TaxBracket is one tier of a progressive schedule. Diff is the precomputed
// subtraction that makes rate*income-diff equal the cumulative marginal tax.
type TaxBracket struct {
	UpTo int64           `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	Diff int64           `yaml:"diff" json:"diff"`
}

// Unbounded reports whether the bracket is the open-ended top tier.
func (b TaxBracket) Unbounded() bool {
	return b.UpTo == NoUpperBound
}

// Contains reports whether net income falls into this bracket, assuming all
// lower brackets have already been ruled out.
func (b TaxBracket) Contains(netIncome int64) bool {
	return b.Unbounded() || netIncome <= b.UpTo
}

// StandardDeduction returns the standard deduction for the filing status
func (r *RuleSet) StandardDeduction(status FilingStatus) int64 {
	if status.IsJoint() {
		return r.Deduction.StandardCouple
	}
	return r.Deduction.StandardSingle
}

// ElderTopUp is the extra exemption granted for each elder over the base amount.
func (r *RuleSet) ElderTopUp() int64 {
	return r.Exemption.Elder70 - r.Exemption.PerPerson
}
