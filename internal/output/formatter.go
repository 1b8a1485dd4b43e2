package output

import (
	"sort"
	"strings"
)

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Extension() string
	Format(r *Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(r *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

// Extension defaults to the formatter name
func (f FormatterFunc) Extension() string {
	if f.Ext == "" {
		return f.ID
	}
	return f.Ext
}

func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"csv":     CSVFormatter{},
	"html":    HTMLFormatter{},
	"pdf":     PDFFormatter{},
	"xlsx":    XLSXFormatter{},
}

var formatAliases = map[string]string{
	"text":  "console",
	"txt":   "console",
	"table": "console",
	"excel": "xlsx",
	"htm":   "html",
}

// GetFormatterByName returns the formatter registered under name or one of its
// aliases, or nil when there is none.
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[key]; ok {
		key = canonical
	}
	return formatters[key]
}

// AvailableFormats lists the canonical format names
func AvailableFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists every accepted alternative spelling
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
