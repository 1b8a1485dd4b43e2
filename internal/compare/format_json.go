package compare

import (
	"encoding/json"
	"io"
	"strings"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Write encodes the comparison set to w. HTML characters are left unescaped so
// outcome messages stay readable.
func (jf *JSONFormatter) Write(w io.Writer, compSet *ComparisonSet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if jf.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(compSet)
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	if err := jf.Write(&sb, compSet); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
