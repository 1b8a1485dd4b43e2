package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Total Income",
		"Exemption",
		"General Deduction",
		"Special Deductions",
		"Net Income",
		"Tax Payable",
		"Final Tax",
		"Refund",
		"Tax Diff from Base",
		"Net Diff from Base",
		"Outcome",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	r := result.Result
	outcome := ""
	if result.Outcome != nil {
		outcome = string(result.Outcome.Level)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		formatInt(r.TotalIncome),
		formatInt(r.Exemption),
		formatInt(r.GeneralDeduction),
		formatInt(r.Special),
		formatInt(r.NetIncome),
		formatInt(r.TaxPayable),
		formatInt(r.FinalTax),
		formatInt(r.Refund),
		formatInt(result.TaxDiffFromBase),
		formatInt(result.NetDiffFromBase),
		outcome,
	}
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
