package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/twtax/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": domain.FormatAmount,
	"money":  domain.FormatMoney,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Items       []domain.LineItem
		AdviceLines []string
		Currency    string
	}{r, r.Result.LineItems(), r.AdviceLines(), domain.CurrencyPrefix}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
