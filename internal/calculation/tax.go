package calculation

import (
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Tax applies the progressive schedule to net taxable income using the
// quick-deduction form: floor(net * rate - diff) in the first bracket whose
// upper bound covers net, never below zero.
func Tax(netIncome int64, brackets []domain.TaxBracket) int64 {
	for _, b := range brackets {
		if !b.Contains(netIncome) {
			continue
		}
		tax := decimal.NewFromInt(netIncome).
			Mul(b.Rate).
			Sub(decimal.NewFromInt(b.Diff)).
			Floor()
		if tax.IsNegative() {
			return 0
		}
		return tax.IntPart()
	}
	// Unreachable for a validated schedule, which always ends in an unbounded bracket.
	return 0
}

// MarginalRate returns the rate of the bracket that net income falls into
func MarginalRate(netIncome int64, brackets []domain.TaxBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Contains(netIncome) {
			return b.Rate
		}
	}
	return decimal.Zero
}
