package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/twtax/internal/domain"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.CasePath != "" {
		sb.WriteString(fmt.Sprintf("Case: %s\n", compSet.CasePath))
	}
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Net Income",
		numWidth, "Tax Payable",
		numWidth, "Tax Due",
		numWidth, "Refund"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			// A saving shows as a negative change in tax
			sb.WriteString(fmt.Sprintf("  Tax Payable:        %s\n", tf.signedMoney(-alt.TaxDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Net Taxable Income: %s\n", tf.signedMoney(alt.NetDiffFromBase)))
			if alt.Outcome != nil {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Outcome.Message))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	r := result.Result
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, domain.FormatMoney(r.NetIncome),
		numWidth, domain.FormatMoney(r.TaxPayable),
		numWidth, domain.FormatMoney(r.FinalTax),
		numWidth, domain.FormatMoney(r.Refund))
}

// signedMoney renders a delta with an explicit sign
func (tf *TableFormatter) signedMoney(delta int64) string {
	switch {
	case delta > 0:
		return "+" + domain.FormatMoney(delta)
	case delta < 0:
		return domain.FormatMoney(delta)
	}
	return " " + domain.FormatMoney(0)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		taxChange := "="
		if alt.TaxDiffFromBase != 0 {
			taxChange = tf.signedMoney(-alt.TaxDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, taxChange))
	}

	return sb.String()
}
