package domain

import (
	"fmt"
	"strings"
)

// FilingStatus is the household filing status
type FilingStatus string

const (
	FilingSingle FilingStatus = "single"
	FilingJoint  FilingStatus = "joint"
)

// filingStatusAliases maps accepted spellings, including the labels used on the
// paper return, to the canonical status.
var filingStatusAliases = map[string]FilingStatus{
	"single":  FilingSingle,
	"joint":   FilingJoint,
	"married": FilingJoint,
	"單身":      FilingSingle,
	"夫妻合併":    FilingJoint,
}

// ParseFilingStatus converts a user-supplied label to a FilingStatus
func ParseFilingStatus(s string) (FilingStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return FilingSingle, nil
	}
	if status, ok := filingStatusAliases[key]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown filing status %q (valid: single, joint)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so case files may use any alias.
func (f *FilingStatus) UnmarshalText(text []byte) error {
	status, err := ParseFilingStatus(string(text))
	if err != nil {
		return err
	}
	*f = status
	return nil
}

// IsJoint reports whether spouses file together
func (f FilingStatus) IsJoint() bool {
	return f == FilingJoint
}

// Valid reports whether f is one of the canonical statuses
func (f FilingStatus) Valid() bool {
	return f == FilingSingle || f == FilingJoint
}

// SalaryEarners is the flat multiplier applied to the salary special deduction cap.
// It does not depend on how many household members actually earn wages.
func (f FilingStatus) SalaryEarners() int64 {
	if f.IsJoint() {
		return 2
	}
	return 1
}

// TaxInput holds the declared figures for one evaluation.
// All amounts are whole currency units; absent fields are zero.
type TaxInput struct {
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`

	// Headcounts
	Disabled       int `yaml:"disabled" json:"disabled"`
	LTC            int `yaml:"ltc" json:"ltc"`
	PreschoolFirst int `yaml:"preschool_first" json:"preschool_first"`
	PreschoolMore  int `yaml:"preschool_more" json:"preschool_more"`

	// Income
	Salary        int64 `yaml:"salary" json:"salary"`
	OtherIncome   int64 `yaml:"other_income" json:"other_income"`
	Withheld      int64 `yaml:"withheld" json:"withheld"`
	SavingsInvest int64 `yaml:"savings_invest" json:"savings_invest"`

	// Itemizable expenses
	Donation          int64 `yaml:"donation" json:"donation"`
	Insurance         int64 `yaml:"insurance" json:"insurance"`
	MedicalBirth      int64 `yaml:"medical_birth" json:"medical_birth"`
	DisasterLoss      int64 `yaml:"disaster_loss" json:"disaster_loss"`
	MortgageInterest  int64 `yaml:"mortgage_interest" json:"mortgage_interest"`
	RentSpecial       int64 `yaml:"rent_special" json:"rent_special"`
	HouseRentItemized int64 `yaml:"house_rent_itemized" json:"house_rent_itemized"`
}

// TotalIncome is salary plus all other comprehensive income
func (in TaxInput) TotalIncome() int64 {
	return in.Salary + in.OtherIncome
}

// Household holds the headcounts that drive the exemption
type Household struct {
	Dependents int `yaml:"dependents" json:"dependents"`
	Elders70   int `yaml:"elders70" json:"elders70"`
}

// Persons counts the taxpayer, a joint-filing spouse and all dependents.
func (h Household) Persons(status FilingStatus) int64 {
	persons := int64(1 + h.Dependents)
	if status.IsJoint() {
		persons++
	}
	return persons
}

// Case is a named household return as stored in a case file. The file is flat:
// household headcounts and declared figures sit side by side at the top level.
type Case struct {
	Name      string    `yaml:"name,omitempty" json:"name,omitempty"`
	Household Household `yaml:",inline" json:"household"`
	Input     TaxInput  `yaml:",inline" json:"input"`
}
