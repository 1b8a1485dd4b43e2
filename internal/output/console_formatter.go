package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/twtax/internal/domain"
)

// ConsoleFormatter renders the plain-text report shown on a terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, r.Title)
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-34s %20s\n", "Item", "Amount ("+domain.CurrencyPrefix+")")
	fmt.Fprintln(&buf, strings.Repeat("-", 55))
	for _, item := range r.Result.LineItems() {
		fmt.Fprintf(&buf, "%-34s %20s\n", item.Label, domain.FormatAmount(item.Amount))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 55))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAX-SAVING ADVICE")
	fmt.Fprintln(&buf, strings.Repeat("-", 17))
	for _, line := range r.AdviceLines() {
		fmt.Fprintf(&buf, "• %s\n", line)
	}

	if len(r.Checklist) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "CHECKLIST")
		fmt.Fprintln(&buf, strings.Repeat("-", 9))
		for _, line := range r.Checklist {
			fmt.Fprintf(&buf, "• %s\n", line)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "※ %s\n", r.Disclaimer)
	return buf.Bytes(), nil
}
