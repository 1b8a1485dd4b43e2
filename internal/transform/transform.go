package transform

import (
	"fmt"
)

// ScenarioTransform is one what-if edit of a household return: setting the
// simulated donation, insurance, mortgage interest or rent amount, raising a
// field to its deductible limit, clamping to the limits, or dropping itemized
// expenses. Apply works on a copy and leaves the base scenario untouched.
type ScenarioTransform interface {
	// Apply returns the edited copy of base.
	Apply(base *Scenario) (*Scenario, error)

	// Name is the registry key, such as "set_donation" or "clamp".
	Name() string

	// Description is the line shown in comparison tables, such as
	// "Set Donation to 50,000".
	Description() string

	// Validate checks the edit against the scenario's limits before Apply runs.
	Validate(base *Scenario) error
}

// ApplyTransforms chains transforms over a copy of base. Each transform is
// validated against the output of the one before it, so a limit check sees the
// amounts already simulated.
func ApplyTransforms(base *Scenario, transforms []ScenarioTransform) (*Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	current := base.Copy()
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", t.Name(), err)
		}

		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", t.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError reports which transform rejected a scenario and at which step
// ("validate" or "apply").
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	msg := fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError builds a *TransformError as an error value.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{TransformName: transformName, Operation: operation, Reason: reason, Err: err}
}
