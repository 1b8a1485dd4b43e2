package output

import (
	"fmt"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter writes a workbook with a Summary sheet of result figures and an
// Advice sheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

const (
	xlsxSummarySheet = "Summary"
	xlsxAdviceSheet  = "Advice"
)

// thousands separator, no decimals
const xlsxAmountFormat = 3

func (x XLSXFormatter) Format(r *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(xlsxAdviceSheet); err != nil {
		return nil, fmt.Errorf("create advice sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: xlsxAmountFormat})
	if err != nil {
		return nil, err
	}

	cells := []struct {
		cell  string
		value any
	}{
		{"A1", r.Title},
		{"A2", "Generated"},
		{"B2", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"A3", "Report ID"},
		{"B3", r.ID.String()},
		{"A5", "Item"},
		{"B5", "Amount (" + domain.CurrencyPrefix + ")"},
	}
	for _, c := range cells {
		if err := f.SetCellValue(xlsxSummarySheet, c.cell, c.value); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(xlsxSummarySheet, "A1", "A1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(xlsxSummarySheet, "A5", "B5", bold); err != nil {
		return nil, err
	}

	row := 6
	for _, item := range r.Result.LineItems() {
		if err := f.SetSheetRow(xlsxSummarySheet, fmt.Sprintf("A%d", row), &[]any{item.Label, item.Amount}); err != nil {
			return nil, err
		}
		row++
	}
	if err := f.SetCellStyle(xlsxSummarySheet, "B6", fmt.Sprintf("B%d", row-1), amountStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(xlsxSummarySheet, fmt.Sprintf("A%d", row+1), r.Disclaimer); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(xlsxSummarySheet, "A", "A", 34); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(xlsxSummarySheet, "B", "B", 18); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(xlsxAdviceSheet, "A1", &[]any{"#", "Advice"}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(xlsxAdviceSheet, "A1", "B1", bold); err != nil {
		return nil, err
	}
	lines := r.AdviceLines()
	lines = append(lines, r.Checklist...)
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(xlsxAdviceSheet, cell, &[]any{i + 1, line}); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(xlsxAdviceSheet, "B", "B", 100); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
