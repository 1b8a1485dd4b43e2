package calculation

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/domain"
)

// Evaluate runs the full pipeline: exemption, general deduction, special
// deductions, net income, tax and settlement. It is pure; the input is not
// modified and the same arguments always produce the same result.
func Evaluate(input domain.TaxInput, household domain.Household, rules *domain.RuleSet) (*domain.TaxResult, error) {
	if rules == nil {
		return nil, fmt.Errorf("rule set is required")
	}
	if err := ValidateInput(input, household); err != nil {
		return nil, err
	}

	status := input.FilingStatus
	total := input.TotalIncome()
	exemption := Exemption(status, household, rules)
	general := GeneralDeduction(status, Itemized(input), rules)
	special := SpecialDeductions(input, rules)

	net := max(0, total-exemption-general-special)
	tax := Tax(net, rules.Brackets)

	return &domain.TaxResult{
		TotalIncome:      total,
		Exemption:        exemption,
		GeneralDeduction: general,
		Special:          special,
		NetIncome:        net,
		TaxPayable:       tax,
		FinalTax:         max(0, tax-input.Withheld),
		Refund:           max(0, input.Withheld-tax),
		IncomeYear:       rules.IncomeYear,
		FilingYear:       rules.FilingYear,
	}, nil
}

// Engine binds a rule set to a logger for repeated evaluations
type Engine struct {
	Rules  *domain.RuleSet
	Logger Logger
}

// NewEngine creates an engine for the given rules
func NewEngine(rules *domain.RuleSet) *Engine {
	return &Engine{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger; nil selects the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Evaluate evaluates one household return against the engine's rules
func (e *Engine) Evaluate(input domain.TaxInput, household domain.Household) (*domain.TaxResult, error) {
	result, err := Evaluate(input, household, e.Rules)
	if err != nil {
		e.Logger.Warnf("evaluation rejected: %v", err)
		return nil, err
	}
	e.Logger.Debugf("evaluated %s return: total=%d exemption=%d general=%d special=%d net=%d tax=%d",
		input.FilingStatus, result.TotalIncome, result.Exemption, result.GeneralDeduction,
		result.Special, result.NetIncome, result.TaxPayable)
	return result, nil
}
