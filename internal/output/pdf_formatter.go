package output

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/twtax/internal/domain"
)

// PDFFormatter lays the report out on A4 pages with the core Helvetica font.
// Text is translated to cp1252, so characters outside that code page do not render.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

const (
	pdfMargin     = 12.7 // 36pt
	pdfTextWidth  = 184.6
	pdfLabelWidth = 60
	pdfLineHeight = 7
)

func (p PDFFormatter) Format(r *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetModificationDate(r.GeneratedAt)
	pdf.SetTitle(r.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 15)
	pdf.MultiCell(pdfTextWidth, 8, tr(r.Title), "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(pdfTextWidth, 6, "Generated: "+r.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(pdfLabelWidth, pdfLineHeight, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfLabelWidth, pdfLineHeight, "Amount ("+domain.CurrencyPrefix+")", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range r.Result.LineItems() {
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(item.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, domain.FormatAmount(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfTextWidth, 8, "Tax-saving advice", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(r.Advice) == 0 {
		pdf.CellFormat(pdfTextWidth, 6, tr("• "+NoAdviceMessage), "", 1, "L", false, 0, "")
	}
	for _, tip := range r.Advice {
		pdf.MultiCell(pdfTextWidth, 6, tr(tip.Message), "1", "L", true)
		pdf.Ln(2)
	}

	if len(r.Checklist) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(pdfTextWidth, 8, "Checklist", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range r.Checklist {
			pdf.MultiCell(pdfTextWidth, 6, tr("• "+line), "", "L", false)
		}
	}

	pdf.Ln(5)
	pdf.MultiCell(pdfTextWidth, 6, tr("Note: "+r.Disclaimer), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
