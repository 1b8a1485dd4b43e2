package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/rgehrsitz/twtax/internal/transform"
)

// SimulatedScenarioName names the scenario built from explicit transforms
const SimulatedScenarioName = "Simulated"

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates  []string // Template names; each becomes one alternative
	Transforms []string // Transform specs applied together as one "Simulated" alternative
	CasePath   string   // Shown in reports only
}

// Compare evaluates the case as the base scenario and each requested alternative.
// Every alternative starts from the base clamped to its simulation limits.
func (ce *CompareEngine) Compare(ctx context.Context, c *domain.Case, options CompareOptions) (*ComparisonSet, error) {
	base, baseTax, err := transform.NewBaseline(c, ce.CalcEngine.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	ce.CalcEngine.Logger.Debugf("comparison limits: %+v", base.Limits)

	baseResult := ComparisonResult{ScenarioName: base.Name, Input: base.Input, Result: baseTax}

	type alternative struct {
		name        string
		description string
		transforms  []transform.ScenarioTransform
	}
	var alts []alternative

	for _, name := range options.Templates {
		tmpl, ok := ce.TemplateRegistry.Get(name)
		if !ok {
			return nil, fmt.Errorf("template %s not found", name)
		}
		alts = append(alts, alternative{name: tmpl.Name, description: tmpl.Description, transforms: tmpl.Transforms})
	}

	if len(options.Transforms) > 0 {
		var transforms []transform.ScenarioTransform
		var description string
		for i, spec := range options.Transforms {
			t, err := ce.TransformRegistry.ParseTransformSpec(spec)
			if err != nil {
				return nil, fmt.Errorf("invalid transform %q: %w", spec, err)
			}
			if i > 0 {
				description += "; "
			}
			description += t.Description()
			transforms = append(transforms, t)
		}
		alts = append(alts, alternative{name: SimulatedScenarioName, description: description, transforms: transforms})
	}

	alternatives := make([]ComparisonResult, 0, len(alts))
	for _, alt := range alts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chain := append([]transform.ScenarioTransform{transform.ClampToLimits{}}, alt.transforms...)
		modified, err := transform.ApplyTransforms(base, chain)
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", alt.name, err)
		}
		modified.Name = alt.name

		result, err := ce.CalcEngine.Evaluate(modified.Input, modified.Household)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", alt.name, err)
		}

		altResult := ComparisonResult{
			ScenarioName: alt.name,
			Description:  alt.description,
			Input:        modified.Input,
			Result:       result,
		}
		alternatives = append(alternatives, CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		CasePath:           options.CasePath,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		Limits:             base.Limits,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares explicit, already-built scenarios against a base
func (ce *CompareEngine) CompareScenarios(base *transform.Scenario, alternatives ...*transform.Scenario) (*ComparisonSet, error) {
	baseTax, err := ce.CalcEngine.Evaluate(base.Input, base.Household)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ComparisonResult{ScenarioName: base.Name, Input: base.Input, Result: baseTax}

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, alt := range alternatives {
		tax, err := ce.CalcEngine.Evaluate(alt.Input, alt.Household)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", alt.Name, err)
		}
		results = append(results, CalculateComparison(ComparisonResult{ScenarioName: alt.Name, Input: alt.Input, Result: tax}, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: results,
		Limits:             base.Limits,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}
