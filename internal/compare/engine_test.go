package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/rgehrsitz/twtax/internal/transform"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *CompareEngine {
	rules := &domain.RuleSet{
		Exemption: domain.ExemptionRules{PerPerson: 97000, Elder70: 145500},
		Deduction: domain.DeductionRules{
			StandardSingle:     131000,
			StandardCouple:     262000,
			DonationLimitRate:  decimal.NewFromFloat(0.2),
			MortgageInterest:   300000,
			InsurancePerPerson: 24000,
		},
		Special: domain.SpecialRules{Salary: 218000, SavingsInvestment: 270000, Rent: 180000},
		Brackets: []domain.TaxBracket{
			{UpTo: 590000, Rate: decimal.NewFromFloat(0.05)},
			{UpTo: 1330000, Rate: decimal.NewFromFloat(0.12), Diff: 41300},
			{UpTo: domain.NoUpperBound, Rate: decimal.NewFromFloat(0.20), Diff: 147700},
		},
	}
	return NewCompareEngine(calculation.NewEngine(rules))
}

func testCase() *domain.Case {
	return &domain.Case{
		Name: "single",
		Input: domain.TaxInput{
			FilingStatus: domain.FilingSingle,
			Salary:       1500000,
			Withheld:     60000,
			Donation:     10000,
		},
	}
}

func TestCompare_Templates(t *testing.T) {
	ce := testEngine()

	set, err := ce.Compare(context.Background(), testCase(), CompareOptions{
		Templates: []string{"max_donation", "no_itemized"},
		CasePath:  "case.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "Current", set.BaseScenarioName)
	assert.Equal(t, "case.yaml", set.CasePath)
	assert.Equal(t, int64(300000), set.Limits.Donation)

	// base: net 1,500,000 - 97,000 - 131,000 - 218,000 = 1,054,000
	base := set.BaseResult.Result
	assert.Equal(t, int64(1054000), base.NetIncome)
	assert.Equal(t, int64(85180), base.TaxPayable)

	require.Len(t, set.AlternativeResults, 2)
	maxDonation := set.AlternativeResults[0]
	assert.Equal(t, "max_donation", maxDonation.ScenarioName)
	assert.Equal(t, int64(300000), maxDonation.Input.Donation)
	// itemized 300,000 replaces the 131,000 standard deduction
	assert.Equal(t, int64(885000), maxDonation.Result.NetIncome)
	assert.Equal(t, int64(64900), maxDonation.Result.TaxPayable)
	assert.Equal(t, int64(20280), maxDonation.TaxDiffFromBase)
	assert.Equal(t, int64(-169000), maxDonation.NetDiffFromBase)
	assert.Equal(t, LevelSuccess, maxDonation.Outcome.Level)

	noItemized := set.AlternativeResults[1]
	assert.Zero(t, noItemized.TaxDiffFromBase)
	assert.Equal(t, LevelInfo, noItemized.Outcome.Level)

	assert.Contains(t, set.Recommendations[0], "max_donation")
}

func TestCompare_Transforms(t *testing.T) {
	set, err := testEngine().Compare(context.Background(), testCase(), CompareOptions{
		Transforms: []string{"set_donation:amount=50000", "set_rent:amount=180000"},
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)

	sim := set.AlternativeResults[0]
	assert.Equal(t, SimulatedScenarioName, sim.ScenarioName)
	assert.Equal(t, int64(50000), sim.Input.Donation)
	assert.Equal(t, int64(180000), sim.Input.RentSpecial)
	assert.Equal(t, "Set Donation to 50,000; Set Rent special deduction to 180,000", sim.Description)
}

func TestCompare_Errors(t *testing.T) {
	ce := testEngine()

	_, err := ce.Compare(context.Background(), testCase(), CompareOptions{Templates: []string{"nope"}})
	assert.ErrorContains(t, err, "template nope not found")

	_, err = ce.Compare(context.Background(), testCase(), CompareOptions{Transforms: []string{"set_donation:amount=900000"}})
	assert.ErrorContains(t, err, "exceeds the limit")

	_, err = ce.Compare(context.Background(), testCase(), CompareOptions{Transforms: []string{"bogus"}})
	assert.Error(t, err)

	bad := testCase()
	bad.Input.Salary = -1
	_, err = ce.Compare(context.Background(), bad, CompareOptions{})
	assert.ErrorContains(t, err, "failed to calculate base scenario")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ce.Compare(ctx, testCase(), CompareOptions{Templates: []string{"clamp"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareScenarios(t *testing.T) {
	ce := testEngine()
	base, _, err := transform.NewBaseline(testCase(), ce.CalcEngine.Rules)
	require.NoError(t, err)

	alt, err := transform.ApplyTransforms(base, []transform.ScenarioTransform{transform.SetInsurance(24000)})
	require.NoError(t, err)
	alt.Name = "insured"

	set, err := ce.CompareScenarios(base, alt)
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)
	assert.Equal(t, "insured", set.AlternativeResults[0].ScenarioName)
	// 34,000 itemized is still below the standard deduction
	assert.Zero(t, set.AlternativeResults[0].TaxDiffFromBase)
}
