package output

import (
	"encoding/json"
)

// JSONFormatter encodes the report as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
