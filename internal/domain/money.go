package domain

import (
	"github.com/dustin/go-humanize"
)

// CurrencyPrefix is prepended to formatted money amounts
const CurrencyPrefix = "NT$"

// FormatMoney renders a whole currency amount with thousands separators, e.g. NT$1,234,567
func FormatMoney(v int64) string {
	if v < 0 {
		return "-" + CurrencyPrefix + humanize.Comma(-v)
	}
	return CurrencyPrefix + humanize.Comma(v)
}

// FormatAmount renders an amount with thousands separators and no currency prefix
func FormatAmount(v int64) string {
	return humanize.Comma(v)
}
