package compare

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/rgehrsitz/twtax/internal/transform"
)

// Level classifies an outcome for display
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Outcome summarizes how a simulated scenario differs from the current one
type Outcome struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// DescribeOutcome classifies the change in tax payable and net taxable income.
// diffTax is current minus simulated tax, so a positive value is a saving;
// diffNet is simulated minus current net taxable income.
func DescribeOutcome(diffTax, diffNet int64) Outcome {
	abs := func(v int64) string {
		if v < 0 {
			v = -v
		}
		return domain.FormatMoney(v)
	}

	switch {
	case diffTax > 0 && diffNet >= 0:
		return Outcome{LevelSuccess, fmt.Sprintf(
			"In the simulated scenario, tax payable is %s lower than now and net taxable income rises by %s.",
			abs(diffTax), abs(diffNet))}
	case diffTax > 0:
		return Outcome{LevelSuccess, fmt.Sprintf(
			"In the simulated scenario, tax payable is %s lower than now, but net taxable income falls by %s.",
			abs(diffTax), abs(diffNet))}
	case diffTax == 0 && diffNet == 0:
		return Outcome{LevelInfo, "In the simulated scenario, tax payable and net taxable income are the same as now."}
	case diffTax == 0 && diffNet > 0:
		return Outcome{LevelInfo, fmt.Sprintf(
			"In the simulated scenario, tax payable is the same, but net taxable income rises by %s.", abs(diffNet))}
	case diffTax == 0:
		return Outcome{LevelInfo, fmt.Sprintf(
			"In the simulated scenario, tax payable is the same, but net taxable income falls by %s.", abs(diffNet))}
	case diffNet >= 0:
		return Outcome{LevelWarning, fmt.Sprintf(
			"In the simulated scenario, tax payable rises by %s, but net taxable income rises by %s.",
			abs(diffTax), abs(diffNet))}
	default:
		return Outcome{LevelWarning, fmt.Sprintf(
			"In the simulated scenario, tax payable rises by %s and net taxable income falls by %s.",
			abs(diffTax), abs(diffNet))}
	}
}

// ComparisonResult represents a single evaluated scenario with its deltas from the base
type ComparisonResult struct {
	ScenarioName string            `json:"scenarioName"`
	Description  string            `json:"description,omitempty"`
	Input        domain.TaxInput   `json:"input"`
	Result       *domain.TaxResult `json:"result"`

	// Comparison to Base
	TaxDiffFromBase int64    `json:"taxDiffFromBase"` // base tax minus this tax
	NetDiffFromBase int64    `json:"netDiffFromBase"` // this net income minus base net income
	Outcome         *Outcome `json:"outcome,omitempty"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	CasePath           string             `json:"casePath,omitempty"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Limits             transform.Limits   `json:"limits"`
	Recommendations    []string           `json:"recommendations"`
}

// CalculateComparison fills in the deltas and outcome of a scenario against the base
func CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TaxDiffFromBase = base.Result.TaxPayable - scenario.Result.TaxPayable
	scenario.NetDiffFromBase = scenario.Result.NetIncome - base.Result.NetIncome
	outcome := DescribeOutcome(scenario.TaxDiffFromBase, scenario.NetDiffFromBase)
	scenario.Outcome = &outcome
	return scenario
}

// GenerateRecommendations names the alternative with the lowest tax payable
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	var best *ComparisonResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TaxDiffFromBase > 0 && (best == nil || alt.TaxDiffFromBase > best.TaxDiffFromBase) {
			best = alt
		}
	}

	if best == nil {
		recommendations = append(recommendations,
			"No alternative lowers tax payable below the "+compSet.BaseScenarioName+" scenario")
		return recommendations
	}

	recommendations = append(recommendations,
		"Lowest tax: "+best.ScenarioName+" saves "+domain.FormatMoney(best.TaxDiffFromBase)+" in tax payable")

	if best.Result.Refund > compSet.BaseResult.Result.Refund {
		recommendations = append(recommendations,
			"Refund grows to "+domain.FormatMoney(best.Result.Refund)+" under "+best.ScenarioName)
	}
	return recommendations
}
