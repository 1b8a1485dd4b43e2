package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/twtax/internal/domain"
)

// MaxAmount is the largest money figure accepted on input
const MaxAmount int64 = 900_000_000

// InvalidInputError reports an input figure outside its accepted range.
// Values are never clamped.
type InvalidInputError struct {
	Field  string
	Value  int64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%d: %s", e.Field, e.Value, e.Reason)
}

// headcount limits, inclusive
var headcountLimits = []struct {
	field string
	max   int
	get   func(domain.TaxInput, domain.Household) int
}{
	{"dependents", 10, func(_ domain.TaxInput, h domain.Household) int { return h.Dependents }},
	{"elders70", 5, func(_ domain.TaxInput, h domain.Household) int { return h.Elders70 }},
	{"disabled", 5, func(in domain.TaxInput, _ domain.Household) int { return in.Disabled }},
	{"ltc", 5, func(in domain.TaxInput, _ domain.Household) int { return in.LTC }},
	{"preschool_first", 1, func(in domain.TaxInput, _ domain.Household) int { return in.PreschoolFirst }},
	{"preschool_more", 5, func(in domain.TaxInput, _ domain.Household) int { return in.PreschoolMore }},
}

func moneyFields(in domain.TaxInput) []struct {
	field string
	value int64
} {
	return []struct {
		field string
		value int64
	}{
		{"salary", in.Salary},
		{"other_income", in.OtherIncome},
		{"withheld", in.Withheld},
		{"savings_invest", in.SavingsInvest},
		{"donation", in.Donation},
		{"insurance", in.Insurance},
		{"medical_birth", in.MedicalBirth},
		{"disaster_loss", in.DisasterLoss},
		{"mortgage_interest", in.MortgageInterest},
		{"rent_special", in.RentSpecial},
		{"house_rent_itemized", in.HouseRentItemized},
	}
}

// ValidateInput checks every field of the input and household. All problems are
// returned together; each one is an *InvalidInputError.
func ValidateInput(input domain.TaxInput, household domain.Household) error {
	var errs []error

	if !input.FilingStatus.Valid() {
		errs = append(errs, &InvalidInputError{
			Field:  "filing_status",
			Reason: fmt.Sprintf("unknown filing status %q", input.FilingStatus),
		})
	}

	for _, l := range headcountLimits {
		v := l.get(input, household)
		if v < 0 || v > l.max {
			errs = append(errs, &InvalidInputError{
				Field:  l.field,
				Value:  int64(v),
				Reason: fmt.Sprintf("must be between 0 and %d", l.max),
			})
		}
	}

	for _, m := range moneyFields(input) {
		switch {
		case m.value < 0:
			errs = append(errs, &InvalidInputError{Field: m.field, Value: m.value, Reason: "cannot be negative"})
		case m.value > MaxAmount:
			errs = append(errs, &InvalidInputError{
				Field:  m.field,
				Value:  m.value,
				Reason: fmt.Sprintf("exceeds the maximum of %d", MaxAmount),
			})
		}
	}

	return errors.Join(errs...)
}
