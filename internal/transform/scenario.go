package transform

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Field names a declared amount that a simulation may override
type Field string

const (
	FieldDonation  Field = "donation"
	FieldInsurance Field = "insurance"
	FieldMortgage  Field = "mortgage_interest"
	FieldRent      Field = "rent_special"
)

// Fields lists the simulated fields in display order
func Fields() []Field {
	return []Field{FieldDonation, FieldInsurance, FieldMortgage, FieldRent}
}

// ParseField accepts a field name or its short alias
func ParseField(s string) (Field, error) {
	switch s {
	case "donation":
		return FieldDonation, nil
	case "insurance":
		return FieldInsurance, nil
	case "mortgage", "mortgage_interest":
		return FieldMortgage, nil
	case "rent", "rent_special":
		return FieldRent, nil
	}
	return "", fmt.Errorf("unknown simulation field %q (valid: donation, insurance, mortgage, rent)", s)
}

// Label is the display name of the field
func (f Field) Label() string {
	switch f {
	case FieldDonation:
		return "Donation"
	case FieldInsurance:
		return "Insurance premiums"
	case FieldMortgage:
		return "Mortgage interest"
	case FieldRent:
		return "Rent special deduction"
	}
	return string(f)
}

// Get reads the field from an input
func (f Field) Get(in domain.TaxInput) int64 {
	switch f {
	case FieldDonation:
		return in.Donation
	case FieldInsurance:
		return in.Insurance
	case FieldMortgage:
		return in.MortgageInterest
	case FieldRent:
		return in.RentSpecial
	}
	return 0
}

// Set writes the field on an input
func (f Field) Set(in *domain.TaxInput, v int64) {
	switch f {
	case FieldDonation:
		in.Donation = v
	case FieldInsurance:
		in.Insurance = v
	case FieldMortgage:
		in.MortgageInterest = v
	case FieldRent:
		in.RentSpecial = v
	}
}

// Limits bounds each simulated field. A limit of zero or less means the field
// cannot be simulated and keeps its declared value.
type Limits struct {
	Donation  int64 `json:"donation"`
	Insurance int64 `json:"insurance"`
	Mortgage  int64 `json:"mortgage_interest"`
	Rent      int64 `json:"rent_special"`
}

// For returns the limit of one field
func (l Limits) For(f Field) int64 {
	switch f {
	case FieldDonation:
		return l.Donation
	case FieldInsurance:
		return l.Insurance
	case FieldMortgage:
		return l.Mortgage
	case FieldRent:
		return l.Rent
	}
	return 0
}

// ComputeLimits derives the simulation bounds from the rules and the baseline
// evaluation: the donation share of baseline total income, the insurance cap per
// insured person, and the mortgage and rent caps.
func ComputeLimits(s *Scenario, baseline *domain.TaxResult, rules *domain.RuleSet) Limits {
	return Limits{
		Donation:  calculation.DonationLimit(baseline.TotalIncome, rules),
		Insurance: calculation.InsuranceLimit(s.Input.FilingStatus, s.Household, rules),
		Mortgage:  rules.Deduction.MortgageInterest,
		Rent:      rules.Special.Rent,
	}
}

// Scenario is one household return under simulation
type Scenario struct {
	Name      string
	Input     domain.TaxInput
	Household domain.Household
	Limits    Limits
}

// NewScenario builds a scenario from a case without limits
func NewScenario(name string, c *domain.Case) *Scenario {
	if name == "" {
		name = c.Name
	}
	return &Scenario{Name: name, Input: c.Input, Household: c.Household}
}

// NewBaseline evaluates a case and returns it as a scenario bounded by the
// limits derived from that evaluation.
func NewBaseline(c *domain.Case, rules *domain.RuleSet) (*Scenario, *domain.TaxResult, error) {
	s := NewScenario("Current", c)
	result, err := calculation.Evaluate(s.Input, s.Household, rules)
	if err != nil {
		return nil, nil, err
	}
	s.Limits = ComputeLimits(s, result, rules)
	return s, result, nil
}

// Copy returns an independent copy of the scenario
func (s *Scenario) Copy() *Scenario {
	c := *s
	return &c
}

// Evaluate runs the calculation engine against the scenario
func (s *Scenario) Evaluate(rules *domain.RuleSet) (*domain.TaxResult, error) {
	return calculation.Evaluate(s.Input, s.Household, rules)
}
