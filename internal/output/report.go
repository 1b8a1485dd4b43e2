package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/twtax/internal/advice"
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Report is one rendered estimate: the evaluation result plus the advice issued for it
type Report struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	GeneratedAt time.Time         `json:"generated_at"`
	IncomeYear  string            `json:"income_year"`
	FilingYear  string            `json:"filing_year"`
	Result      *domain.TaxResult `json:"result"`
	Advice      []advice.Tip      `json:"advice"`
	Checklist   []string          `json:"checklist,omitempty"`
	Disclaimer  string            `json:"disclaimer"`
}

// NewReport builds a report for a result. Year labels come from the result and
// fall back to "-" when the rule document carried none.
func NewReport(result *domain.TaxResult, tips []advice.Tip, now time.Time) *Report {
	incomeYear, filingYear := yearLabel(result.IncomeYear), yearLabel(result.FilingYear)
	return &Report{
		ID:          uuid.New(),
		Title:       fmt.Sprintf("Comprehensive Income Tax Estimate and Advice (%s income, filed %s)", incomeYear, filingYear),
		GeneratedAt: now,
		IncomeYear:  incomeYear,
		FilingYear:  filingYear,
		Result:      result,
		Advice:      tips,
		Disclaimer:  Disclaimer,
	}
}

func yearLabel(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Filename is the suggested file name, e.g. tax_report_2024_20250301_0930.pdf
func (r *Report) Filename(ext string) string {
	return fmt.Sprintf("tax_report_%s_%s.%s", r.IncomeYear, r.GeneratedAt.Format("20060102_1504"), ext)
}

// AdviceLines returns the advice messages, or the no-advice line when there are none
func (r *Report) AdviceLines() []string {
	if len(r.Advice) == 0 {
		return []string{NoAdviceMessage}
	}
	return advice.Messages(r.Advice)
}

// WriteFormatted renders the report with f and writes it into dir under the
// report's file name. It returns the path written.
func WriteFormatted(f Formatter, r *Report, dir string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, r.Filename(f.Extension()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
