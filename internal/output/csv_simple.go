package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per result figure followed by one row per advice line
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Value"}); err != nil {
		return nil, err
	}
	for _, item := range r.Result.LineItems() {
		if err := w.Write([]string{"result", item.Key, strconv.FormatInt(item.Amount, 10)}); err != nil {
			return nil, err
		}
	}
	for i, line := range r.AdviceLines() {
		if err := w.Write([]string{"advice", strconv.Itoa(i + 1), line}); err != nil {
			return nil, err
		}
	}
	for i, line := range r.Checklist {
		if err := w.Write([]string{"checklist", strconv.Itoa(i + 1), line}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"note", "disclaimer", r.Disclaimer}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
