package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rgehrsitz/twtax/internal/advice"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func buildTestReport(tips ...advice.Tip) *Report {
	result := &domain.TaxResult{
		TotalIncome:      1000000,
		Exemption:        97000,
		GeneralDeduction: 131000,
		Special:          338000,
		NetIncome:        434000,
		TaxPayable:       21700,
		Refund:           28300,
		IncomeYear:       "2024",
		FilingYear:       "2025",
	}
	return NewReport(result, tips, testNow)
}

var testTips = []advice.Tip{
	{RuleID: "standard_vs_itemized", Severity: advice.SeverityInfo, Message: "The standard deduction applies."},
	{RuleID: "refund_due", Severity: advice.SeverityInfo, Message: "A refund of NT$28,300 is expected."},
}

func TestNewReport(t *testing.T) {
	r := buildTestReport(testTips...)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.ID.String())
	assert.Equal(t, "Comprehensive Income Tax Estimate and Advice (2024 income, filed 2025)", r.Title)
	assert.Equal(t, "2024", r.IncomeYear)
	assert.Equal(t, "2025", r.FilingYear)
	assert.Equal(t, Disclaimer, r.Disclaimer)
	assert.Equal(t, "tax_report_2024_20250301_0930.pdf", r.Filename("pdf"))

	other := buildTestReport()
	assert.NotEqual(t, r.ID, other.ID, "each report gets its own ID")
}

func TestNewReport_MissingYears(t *testing.T) {
	r := NewReport(&domain.TaxResult{}, nil, testNow)
	assert.Equal(t, "-", r.IncomeYear)
	assert.Contains(t, r.Title, "(- income, filed -)")
	assert.Equal(t, "tax_report_-_20250301_0930.csv", r.Filename("csv"))
}

func TestAdviceLines(t *testing.T) {
	assert.Equal(t, []string{NoAdviceMessage}, buildTestReport().AdviceLines())
	assert.Equal(t, []string{testTips[0].Message, testTips[1].Message}, buildTestReport(testTips...).AdviceLines())
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(r *Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	out, err := formatter.Format(buildTestReport())
	assert.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
	assert.Equal(t, "test-formatter", formatter.Extension())

	formatter.Ext = "txt"
	assert.Equal(t, "txt", formatter.Extension())
}

func TestWriteFormatted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	formatter := FormatterFunc{ID: "test", Ext: "txt", F: func(r *Report) ([]byte, error) {
		return []byte("test output content"), nil
	}}

	path, err := WriteFormatted(formatter, buildTestReport(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tax_report_2024_20250301_0930.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatError(t *testing.T) {
	formatter := FormatterFunc{ID: "broken", F: func(r *Report) ([]byte, error) {
		return nil, assert.AnError
	}}

	_, err := WriteFormatted(formatter, buildTestReport(), t.TempDir())
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "failed to render broken report")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormats() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}

	assert.Equal(t, "console", GetFormatterByName("TEXT").Name())
	assert.Equal(t, "xlsx", GetFormatterByName("excel").Name())
	assert.Nil(t, GetFormatterByName("non-existent"))

	assert.Equal(t, []string{"console", "csv", "html", "json", "pdf", "xlsx"}, AvailableFormats())
	assert.Contains(t, AvailableFormatAliases(), "excel")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(testTips...))
	require.NoError(t, err)

	text := string(out)
	for _, want := range []string{
		"(2024 income, filed 2025)",
		"Generated: 2025-03-01 09:30",
		"Amount (NT$)",
		"Net taxable income",
		"434,000",
		"• A refund of NT$28,300 is expected.",
		Disclaimer,
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "CHECKLIST")
}

func TestConsoleFormatter_NoAdvice(t *testing.T) {
	r := buildTestReport()
	r.Checklist = []string{"Keep donation receipts"}

	out, err := ConsoleFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "• "+NoAdviceMessage)
	assert.Contains(t, string(out), "CHECKLIST")
	assert.Contains(t, string(out), "• Keep donation receipts")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport(testTips...))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+8+2+1)

	assert.Equal(t, []string{"Section", "Item", "Value"}, records[0])
	assert.Equal(t, []string{"result", "total_income", "1000000"}, records[1])
	assert.Equal(t, []string{"result", "refund", "28300"}, records[8])
	assert.Equal(t, []string{"advice", "2", testTips[1].Message}, records[10])
	assert.Equal(t, []string{"note", "disclaimer", Disclaimer}, records[11])
}

func TestJSONFormatter(t *testing.T) {
	r := buildTestReport(testTips...)
	out, err := JSONFormatter{Pretty: true}.Format(r)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	assert.Equal(t, int64(21700), decoded.Result.TaxPayable)
	assert.Len(t, decoded.Advice, 2)
	assert.True(t, decoded.GeneratedAt.Equal(testNow))
}

func TestHTMLFormatter(t *testing.T) {
	r := buildTestReport(advice.Tip{Message: "Keep <receipts> & invoices"})
	out, err := HTMLFormatter{}.Format(r)
	require.NoError(t, err)

	html := string(out)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Comprehensive Income Tax Estimate and Advice (2024 income, filed 2025)</title>")
	assert.Contains(t, html, `<td class="amount">1,000,000</td>`)
	assert.Contains(t, html, "Keep &lt;receipts&gt; &amp; invoices")
	assert.Contains(t, html, Disclaimer)

	out, err = HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), NoAdviceMessage)
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(buildTestReport(testTips...))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	reader, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, 1, reader.NumPage())
}

func TestPDFFormatter_ManyTipsSpanPages(t *testing.T) {
	var tips []advice.Tip
	for i := 0; i < 60; i++ {
		tips = append(tips, advice.Tip{Message: strings.Repeat("Consider keeping receipts for every deductible expense. ", 3)})
	}

	out, err := PDFFormatter{}.Format(buildTestReport(tips...))
	require.NoError(t, err)

	reader, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Greater(t, reader.NumPage(), 1)
}

func TestXLSXFormatter(t *testing.T) {
	r := buildTestReport(testTips...)
	r.Checklist = []string{"Keep donation receipts"}

	out, err := XLSXFormatter{}.Format(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{xlsxSummarySheet, xlsxAdviceSheet}, f.GetSheetList())

	title, err := f.GetCellValue(xlsxSummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, r.Title, title)

	id, err := f.GetCellValue(xlsxSummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, r.ID.String(), id)

	label, err := f.GetCellValue(xlsxSummarySheet, "A10")
	require.NoError(t, err)
	assert.Equal(t, "Net taxable income", label)

	rows, err := f.GetRows(xlsxAdviceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, testTips[0].Message, rows[1][1])
	assert.Equal(t, "Keep donation receipts", rows[3][1])
}
