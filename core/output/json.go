// Package output - JSON report
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
