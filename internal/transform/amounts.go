package transform

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SetAmount overrides one simulated field with an explicit amount within its limit
type SetAmount struct {
	Field  Field
	Amount int64
}

// SetDonation overrides the donation amount
func SetDonation(amount int64) *SetAmount {
	return &SetAmount{Field: FieldDonation, Amount: amount}
}

// SetInsurance overrides the insurance premium amount
func SetInsurance(amount int64) *SetAmount {
	return &SetAmount{Field: FieldInsurance, Amount: amount}
}

// SetMortgageInterest overrides the mortgage interest amount
func SetMortgageInterest(amount int64) *SetAmount {
	return &SetAmount{Field: FieldMortgage, Amount: amount}
}

// SetRentSpecial overrides the rent special deduction amount
func SetRentSpecial(amount int64) *SetAmount {
	return &SetAmount{Field: FieldRent, Amount: amount}
}

func (sa *SetAmount) Name() string {
	switch sa.Field {
	case FieldMortgage:
		return "set_mortgage"
	case FieldRent:
		return "set_rent"
	}
	return "set_" + string(sa.Field)
}

func (sa *SetAmount) Description() string {
	return fmt.Sprintf("Set %s to %s", sa.Field.Label(), humanize.Comma(sa.Amount))
}

func (sa *SetAmount) Validate(base *Scenario) error {
	if base == nil {
		return NewTransformError(sa.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sa.Amount < 0 {
		return NewTransformError(sa.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %d", sa.Amount), nil)
	}
	if limit := base.Limits.For(sa.Field); limit > 0 && sa.Amount > limit {
		return NewTransformError(sa.Name(), "validate",
			fmt.Sprintf("amount %s exceeds the limit of %s", humanize.Comma(sa.Amount), humanize.Comma(limit)), nil)
	}
	return nil
}

// Apply sets the field. When the field has no positive limit it cannot be
// simulated and the declared value is kept.
func (sa *SetAmount) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	if base.Limits.For(sa.Field) > 0 {
		sa.Field.Set(&modified.Input, sa.Amount)
	}
	return modified, nil
}

// RaiseToLimit raises one simulated field to its limit
type RaiseToLimit struct {
	Field Field
}

func (rl *RaiseToLimit) Name() string {
	return "raise_to_limit"
}

func (rl *RaiseToLimit) Description() string {
	return fmt.Sprintf("Raise %s to its deductible limit", rl.Field.Label())
}

func (rl *RaiseToLimit) Validate(base *Scenario) error {
	if base == nil {
		return NewTransformError(rl.Name(), "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (rl *RaiseToLimit) Apply(base *Scenario) (*Scenario, error) {
	return (&SetAmount{Field: rl.Field, Amount: base.Limits.For(rl.Field)}).Apply(base)
}

// ClampToLimits lowers every simulated field to at most its limit. This is the
// starting point of an interactive simulation.
type ClampToLimits struct{}

func (ClampToLimits) Name() string {
	return "clamp"
}

func (ClampToLimits) Description() string {
	return "Hold each simulated amount to its deductible limit"
}

func (ClampToLimits) Validate(base *Scenario) error {
	if base == nil {
		return NewTransformError("clamp", "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (ClampToLimits) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	for _, f := range Fields() {
		if limit := base.Limits.For(f); limit > 0 {
			f.Set(&modified.Input, min(f.Get(base.Input), limit))
		}
	}
	return modified, nil
}

// ClearItemized drops every itemizable expense so the standard deduction applies
type ClearItemized struct{}

func (ClearItemized) Name() string {
	return "no_itemized"
}

func (ClearItemized) Description() string {
	return "Drop all itemized expenses and take the standard deduction"
}

func (ClearItemized) Validate(base *Scenario) error {
	if base == nil {
		return NewTransformError("no_itemized", "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

func (ClearItemized) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	in := &modified.Input
	in.Donation = 0
	in.Insurance = 0
	in.MedicalBirth = 0
	in.DisasterLoss = 0
	in.MortgageInterest = 0
	in.HouseRentItemized = 0
	return modified, nil
}
