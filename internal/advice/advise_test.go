package advice

import (
	"testing"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() *domain.RuleSet {
	return &domain.RuleSet{
		Exemption: domain.ExemptionRules{PerPerson: 97000, Elder70: 145500},
		Deduction: domain.DeductionRules{
			StandardSingle:     131000,
			StandardCouple:     262000,
			DonationLimitRate:  decimal.NewFromFloat(0.2),
			MortgageInterest:   300000,
			InsurancePerPerson: 24000,
		},
		Special: domain.SpecialRules{
			Salary:              218000,
			SavingsInvestment:   270000,
			PreschoolFirst:      150000,
			PreschoolSecondPlus: 225000,
			Disability:          218000,
			LongTermCare:        120000,
			Rent:                180000,
		},
		Brackets: []domain.TaxBracket{
			{UpTo: 590000, Rate: decimal.NewFromFloat(0.05)},
			{UpTo: domain.NoUpperBound, Rate: decimal.NewFromFloat(0.12), Diff: 41300},
		},
	}
}

func evaluate(t *testing.T, input domain.TaxInput, household domain.Household) *domain.TaxResult {
	t.Helper()
	result, err := calculation.Evaluate(input, household, testRules())
	require.NoError(t, err)
	return result
}

func ruleIDs(tips []Tip) []string {
	ids := make([]string, len(tips))
	for i, t := range tips {
		ids[i] = t.RuleID
	}
	return ids
}

// quietInput triggers none of the topical rules
func quietInput() domain.TaxInput {
	return domain.TaxInput{
		FilingStatus: domain.FilingSingle,
		Salary:       200000,
		MedicalBirth: 200000,
	}
}

func TestAdvise_FallbackOnly(t *testing.T) {
	input := quietInput()
	result := evaluate(t, input, domain.Household{})
	require.Zero(t, result.FinalTax)
	require.Zero(t, result.Refund)

	got := Advise(input, input.FilingStatus, result, testRules())
	assert.Equal(t, []string{FallbackRule{}.Message(Context{})}, got)
}

func TestAdvise_RentAndMortgageAreExclusive(t *testing.T) {
	input := quietInput()
	input.RentSpecial = 100000
	input.MortgageInterest = 100000
	result := evaluate(t, input, domain.Household{})

	got := Advise(input, input.FilingStatus, result, testRules())
	assert.Contains(t, got, RentVsMortgageRule{}.Message(Context{}))
	assert.NotContains(t, got, FallbackRule{}.Message(Context{}))
}

func TestAdvise_RentAndItemizedRentAreExclusive(t *testing.T) {
	input := quietInput()
	input.RentSpecial = 100000
	input.HouseRentItemized = 50000
	result := evaluate(t, input, domain.Household{})

	tips := Tips(input, input.FilingStatus, result, testRules())
	assert.Contains(t, ruleIDs(tips), "rent_vs_itemized_rent")
	assert.NotContains(t, ruleIDs(tips), "rent_vs_mortgage")
}

func TestTips_FixedOrder(t *testing.T) {
	input := domain.TaxInput{
		FilingStatus:      domain.FilingSingle,
		Salary:            1000000,
		SavingsInvest:     300000,
		Donation:          250000,
		Insurance:         30000,
		MortgageInterest:  400000,
		RentSpecial:       10000,
		HouseRentItemized: 10000,
		PreschoolMore:     1,
		LTC:               1,
		Withheld:          5000,
	}
	result := evaluate(t, input, domain.Household{})

	tips := Tips(input, input.FilingStatus, result, testRules())
	assert.Equal(t, []string{
		"donation_cap",
		"insurance_cap",
		"mortgage_cap",
		"rent_vs_mortgage",
		"rent_vs_itemized_rent",
		"salary_cap",
		"savings_cap",
		"preschool_more_notice",
		"documentation_reminder",
		"refund_due",
	}, ruleIDs(tips))
}

func TestTips_Deterministic(t *testing.T) {
	input := quietInput()
	input.Donation = 100000
	result := evaluate(t, input, domain.Household{})

	assert.Equal(t,
		Tips(input, input.FilingStatus, result, testRules()),
		Tips(input, input.FilingStatus, result, testRules()))
}

func TestStandardVsItemized_UsesCappedTotal(t *testing.T) {
	input := domain.TaxInput{FilingStatus: domain.FilingSingle, Salary: 800000, HouseRentItemized: 200000}
	result := evaluate(t, input, domain.Household{})

	// the engine itemizes the full 200,000, advice caps the rent at 120,000
	assert.Equal(t, int64(200000), result.GeneralDeduction)
	assert.Equal(t, int64(120000), CappedItemized(input))
	assert.Contains(t, ruleIDs(Tips(input, input.FilingStatus, result, testRules())), "standard_vs_itemized")
}

func TestStandardVsItemized_UsesStatusStandard(t *testing.T) {
	ctx := Context{Input: domain.TaxInput{MedicalBirth: 200000}, Rules: testRules()}

	ctx.Status = domain.FilingSingle
	assert.False(t, StandardVsItemizedRule{}.Match(ctx))

	ctx.Status = domain.FilingJoint
	assert.True(t, StandardVsItemizedRule{}.Match(ctx))
}

func TestDonationCap(t *testing.T) {
	result := &domain.TaxResult{TotalIncome: 1000000}
	ctx := Context{Input: domain.TaxInput{Donation: 200000}, Result: result, Rules: testRules()}
	assert.False(t, DonationCapRule{}.Match(ctx), "exactly 20% is allowed")

	ctx.Input.Donation = 200001
	require.True(t, DonationCapRule{}.Match(ctx))
	assert.Contains(t, DonationCapRule{}.Message(ctx), "NT$200,000")
}

func TestInsuranceCap_FlatThreshold(t *testing.T) {
	ctx := Context{Input: domain.TaxInput{Insurance: AdviceInsuranceFlatCap}}
	assert.False(t, InsuranceCapRule{}.Match(ctx))

	ctx.Input.Insurance = AdviceInsuranceFlatCap + 1
	assert.True(t, InsuranceCapRule{}.Match(ctx))
	assert.Contains(t, InsuranceCapRule{}.Message(ctx), "NT$24,000")
}

func TestSalaryCap_ScalesWithStatus(t *testing.T) {
	ctx := Context{Input: domain.TaxInput{Salary: 436000}, Status: domain.FilingJoint, Rules: testRules()}
	assert.False(t, SalaryCapRule{}.Match(ctx))

	ctx.Status = domain.FilingSingle
	assert.True(t, SalaryCapRule{}.Match(ctx))
	assert.Contains(t, SalaryCapRule{}.Message(ctx), "NT$218,000")
}

func TestPreschoolNotice_UsesRuleAmount(t *testing.T) {
	rules := testRules()
	rules.Special.PreschoolSecondPlus = 250000
	ctx := Context{Input: domain.TaxInput{PreschoolMore: 2}, Rules: rules}

	require.True(t, PreschoolNoticeRule{}.Match(ctx))
	assert.Contains(t, PreschoolNoticeRule{}.Message(ctx), "NT$250,000")
}

func TestSettlementTips(t *testing.T) {
	owing := Context{Result: &domain.TaxResult{FinalTax: 10}}
	assert.True(t, BalanceDueRule{}.Match(owing))
	assert.False(t, RefundDueRule{}.Match(owing))

	refund := Context{Result: &domain.TaxResult{Refund: 10}}
	assert.False(t, BalanceDueRule{}.Match(refund))
	assert.True(t, RefundDueRule{}.Match(refund))
}

func TestDefaultRules_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range DefaultRules() {
		assert.False(t, seen[r.ID()], "duplicate rule id %s", r.ID())
		seen[r.ID()] = true
		assert.NotEmpty(t, r.Severity())
	}
	assert.Len(t, seen, 12)
}

type alwaysRule struct{ id string }

func (a alwaysRule) ID() string                 { return a.id }
func (a alwaysRule) Severity() Severity         { return SeverityInfo }
func (a alwaysRule) Match(Context) bool         { return true }
func (a alwaysRule) Message(ctx Context) string { return a.id }

func TestEngine_CustomRules(t *testing.T) {
	tips := NewEngine(alwaysRule{"a"}, alwaysRule{"b"}).Tips(Context{})
	assert.Equal(t, []string{"a", "b"}, Messages(tips))
}
