package advice

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Flat thresholds used by advice only. The calculation engine does not cap these
// categories, and the simulation uses the headcount-scaled insurance cap from the
// rule set instead of AdviceInsuranceFlatCap.
const (
	AdviceMortgageInterestCap  int64 = 300000
	AdviceHouseRentItemizedCap int64 = 120000
	AdviceInsuranceFlatCap     int64 = 24000
)

// AdviceDonationRate is the share of total income above which donations are flagged
var AdviceDonationRate = decimal.NewFromFloat(0.2)

// Severity classifies a tip
type Severity string

const (
	SeverityInfo       Severity = "info"
	SeveritySuggestion Severity = "suggestion"
	SeverityWarning    Severity = "warning"
)

// Context is the read-only view a rule evaluates
type Context struct {
	Input  domain.TaxInput
	Status domain.FilingStatus
	Result *domain.TaxResult
	Rules  *domain.RuleSet
}

// Rule is a stateless predicate plus message over a Context.
// Message is only called when Match returns true.
type Rule interface {
	ID() string
	Severity() Severity
	Match(ctx Context) bool
	Message(ctx Context) string
}

func money(v int64) string {
	return domain.FormatMoney(v)
}

// StandardVsItemizedRule compares a capped itemized total with the standard deduction
type StandardVsItemizedRule struct{}

func (StandardVsItemizedRule) ID() string         { return "standard_vs_itemized" }
func (StandardVsItemizedRule) Severity() Severity { return SeveritySuggestion }

// CappedItemized sums itemizable expenses with mortgage interest and itemized
// house rent held to their statutory caps. It differs from calculation.Itemized,
// which applies no caps.
func CappedItemized(in domain.TaxInput) int64 {
	return in.Donation +
		in.Insurance +
		in.MedicalBirth +
		in.DisasterLoss +
		min(in.MortgageInterest, AdviceMortgageInterestCap) +
		min(in.HouseRentItemized, AdviceHouseRentItemizedCap)
}

func (StandardVsItemizedRule) Match(ctx Context) bool {
	return CappedItemized(ctx.Input) < ctx.Rules.StandardDeduction(ctx.Status)
}

func (StandardVsItemizedRule) Message(Context) string {
	return "Your itemized deductions are below the standard deduction; consider using the standard deduction."
}

// DonationCapRule flags donations above 20% of total income
type DonationCapRule struct{}

func (DonationCapRule) ID() string         { return "donation_cap" }
func (DonationCapRule) Severity() Severity { return SeverityWarning }

func donationThreshold(ctx Context) decimal.Decimal {
	return decimal.NewFromInt(ctx.Result.TotalIncome).Mul(AdviceDonationRate)
}

func (DonationCapRule) Match(ctx Context) bool {
	return decimal.NewFromInt(ctx.Input.Donation).GreaterThan(donationThreshold(ctx))
}

func (DonationCapRule) Message(ctx Context) string {
	return fmt.Sprintf("Donations exceed the 20%% cap of total income (%s); the excess is not deductible.",
		money(donationThreshold(ctx).Round(0).IntPart()))
}

// InsuranceCapRule flags premiums above the flat per-person threshold
type InsuranceCapRule struct{}

func (InsuranceCapRule) ID() string         { return "insurance_cap" }
func (InsuranceCapRule) Severity() Severity { return SeverityWarning }

func (InsuranceCapRule) Match(ctx Context) bool {
	return ctx.Input.Insurance > AdviceInsuranceFlatCap
}

func (InsuranceCapRule) Message(Context) string {
	return fmt.Sprintf("Insurance premiums are capped at %s per insured person for itemized deduction; the excess does not count.",
		money(AdviceInsuranceFlatCap))
}

// MortgageCapRule flags mortgage interest above the itemized cap
type MortgageCapRule struct{}

func (MortgageCapRule) ID() string         { return "mortgage_cap" }
func (MortgageCapRule) Severity() Severity { return SeverityWarning }

func (MortgageCapRule) Match(ctx Context) bool {
	return ctx.Input.MortgageInterest > AdviceMortgageInterestCap
}

func (MortgageCapRule) Message(Context) string {
	return fmt.Sprintf("Mortgage interest is capped at %s for itemized deduction; the excess does not count.",
		money(AdviceMortgageInterestCap))
}

// RentVsMortgageRule flags the rent special deduction claimed alongside mortgage interest
type RentVsMortgageRule struct{}

func (RentVsMortgageRule) ID() string         { return "rent_vs_mortgage" }
func (RentVsMortgageRule) Severity() Severity { return SeverityWarning }

func (RentVsMortgageRule) Match(ctx Context) bool {
	return ctx.Input.RentSpecial > 0 && ctx.Input.MortgageInterest > 0
}

func (RentVsMortgageRule) Message(Context) string {
	return "The rent special deduction and itemized mortgage interest cannot be claimed together; choose the one you qualify for."
}

// RentVsItemizedRentRule flags the rent special deduction claimed alongside itemized rent
type RentVsItemizedRentRule struct{}

func (RentVsItemizedRentRule) ID() string         { return "rent_vs_itemized_rent" }
func (RentVsItemizedRentRule) Severity() Severity { return SeverityWarning }

func (RentVsItemizedRentRule) Match(ctx Context) bool {
	return ctx.Input.RentSpecial > 0 && ctx.Input.HouseRentItemized > 0
}

func (RentVsItemizedRentRule) Message(Context) string {
	return "The rent special deduction and itemized house rent cannot be claimed together; claim only one."
}

// SalaryCapRule notes that salary exceeds the headcount-scaled special deduction cap
type SalaryCapRule struct{}

func (SalaryCapRule) ID() string         { return "salary_cap" }
func (SalaryCapRule) Severity() Severity { return SeverityInfo }

func (SalaryCapRule) Match(ctx Context) bool {
	return ctx.Input.Salary > ctx.Status.SalaryEarners()*ctx.Rules.Special.Salary
}

func (SalaryCapRule) Message(ctx Context) string {
	return fmt.Sprintf("The salary special deduction is capped at %s per person and you have reached it.",
		money(ctx.Rules.Special.Salary))
}

// SavingsCapRule notes savings and investment income above its cap
type SavingsCapRule struct{}

func (SavingsCapRule) ID() string         { return "savings_cap" }
func (SavingsCapRule) Severity() Severity { return SeverityInfo }

func (SavingsCapRule) Match(ctx Context) bool {
	return ctx.Input.SavingsInvest > ctx.Rules.Special.SavingsInvestment
}

func (SavingsCapRule) Message(ctx Context) string {
	return fmt.Sprintf("The savings and investment special deduction is capped at %s; the excess does not count.",
		money(ctx.Rules.Special.SavingsInvestment))
}

// PreschoolNoticeRule confirms the second-and-later preschool rate was applied
type PreschoolNoticeRule struct{}

func (PreschoolNoticeRule) ID() string         { return "preschool_more_notice" }
func (PreschoolNoticeRule) Severity() Severity { return SeverityInfo }

func (PreschoolNoticeRule) Match(ctx Context) bool {
	return ctx.Input.PreschoolMore > 0
}

func (PreschoolNoticeRule) Message(ctx Context) string {
	return fmt.Sprintf("Preschool children from the second onward get %s each; applied automatically.",
		money(ctx.Rules.Special.PreschoolSecondPlus))
}

// DocumentationRule reminds claimants of disability or long-term care deductions to keep certificates
type DocumentationRule struct{}

func (DocumentationRule) ID() string         { return "documentation_reminder" }
func (DocumentationRule) Severity() Severity { return SeverityInfo }

func (DocumentationRule) Match(ctx Context) bool {
	return ctx.Input.Disabled > 0 || ctx.Input.LTC > 0
}

func (DocumentationRule) Message(Context) string {
	return "Keep long-term care or disability certificates ready to claim the special deduction."
}

// BalanceDueRule fires when withholding falls short of the tax payable
type BalanceDueRule struct{}

func (BalanceDueRule) ID() string         { return "balance_due" }
func (BalanceDueRule) Severity() Severity { return SeverityWarning }

func (BalanceDueRule) Match(ctx Context) bool {
	return ctx.Result.FinalTax > 0
}

func (BalanceDueRule) Message(Context) string {
	return "Your withholding falls short and you may owe additional tax; review your withholding for next year."
}

// RefundDueRule fires when withholding exceeds the tax payable
type RefundDueRule struct{}

func (RefundDueRule) ID() string         { return "refund_due" }
func (RefundDueRule) Severity() Severity { return SeveritySuggestion }

func (RefundDueRule) Match(ctx Context) bool {
	return ctx.Result.Refund > 0
}

func (RefundDueRule) Message(Context) string {
	return "You may get a refund; consider adjusting next year's withholding to avoid an interest-free loan to the government."
}

// FallbackRule is used when no other rule matched
type FallbackRule struct{}

func (FallbackRule) ID() string         { return "fallback" }
func (FallbackRule) Severity() Severity { return SeverityInfo }
func (FallbackRule) Match(Context) bool { return true }

func (FallbackRule) Message(Context) string {
	return "Your deduction setup is close to optimal; just check for any special deductions you may have missed."
}

// DefaultRules returns the topical rules in evaluation order
func DefaultRules() []Rule {
	return []Rule{
		StandardVsItemizedRule{},
		DonationCapRule{},
		InsuranceCapRule{},
		MortgageCapRule{},
		RentVsMortgageRule{},
		RentVsItemizedRentRule{},
		SalaryCapRule{},
		SavingsCapRule{},
		PreschoolNoticeRule{},
		DocumentationRule{},
		BalanceDueRule{},
		RefundDueRule{},
	}
}
