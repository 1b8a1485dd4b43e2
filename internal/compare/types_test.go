package compare

import (
	"testing"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribeOutcome(t *testing.T) {
	tests := []struct {
		name    string
		diffTax int64
		diffNet int64
		level   Level
		message string
	}{
		{"saving with higher net", 5000, 0, LevelSuccess,
			"In the simulated scenario, tax payable is NT$5,000 lower than now and net taxable income rises by NT$0."},
		{"saving with lower net", 5000, -100000, LevelSuccess,
			"In the simulated scenario, tax payable is NT$5,000 lower than now, but net taxable income falls by NT$100,000."},
		{"unchanged", 0, 0, LevelInfo,
			"In the simulated scenario, tax payable and net taxable income are the same as now."},
		{"same tax higher net", 0, 20, LevelInfo,
			"In the simulated scenario, tax payable is the same, but net taxable income rises by NT$20."},
		{"same tax lower net", 0, -20, LevelInfo,
			"In the simulated scenario, tax payable is the same, but net taxable income falls by NT$20."},
		{"more tax higher net", -1200, 10000, LevelWarning,
			"In the simulated scenario, tax payable rises by NT$1,200, but net taxable income rises by NT$10,000."},
		{"more tax lower net", -1200, -10000, LevelWarning,
			"In the simulated scenario, tax payable rises by NT$1,200 and net taxable income falls by NT$10,000."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribeOutcome(tt.diffTax, tt.diffNet)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestCalculateComparison(t *testing.T) {
	base := ComparisonResult{ScenarioName: "Current", Result: &domain.TaxResult{TaxPayable: 30000, NetIncome: 600000}}
	alt := ComparisonResult{ScenarioName: "Simulated", Result: &domain.TaxResult{TaxPayable: 20000, NetIncome: 400000}}

	got := CalculateComparison(alt, base)
	assert.Equal(t, int64(10000), got.TaxDiffFromBase)
	assert.Equal(t, int64(-200000), got.NetDiffFromBase)
	if assert.NotNil(t, got.Outcome) {
		assert.Equal(t, LevelSuccess, got.Outcome.Level)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	base := &ComparisonResult{ScenarioName: "Current", Result: &domain.TaxResult{Refund: 100}}
	set := &ComparisonSet{
		BaseScenarioName: "Current",
		BaseResult:       base,
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "small", TaxDiffFromBase: 100, Result: &domain.TaxResult{}},
			{ScenarioName: "big", TaxDiffFromBase: 9000, Result: &domain.TaxResult{Refund: 9100}},
			{ScenarioName: "worse", TaxDiffFromBase: -50, Result: &domain.TaxResult{}},
		},
	}

	assert.Equal(t, []string{
		"Lowest tax: big saves NT$9,000 in tax payable",
		"Refund grows to NT$9,100 under big",
	}, GenerateRecommendations(set))

	set.AlternativeResults = set.AlternativeResults[2:]
	assert.Equal(t, []string{"No alternative lowers tax payable below the Current scenario"}, GenerateRecommendations(set))

	set.AlternativeResults = nil
	assert.Empty(t, GenerateRecommendations(set))
}
