package output

import (
	"encoding/json"
	"io"

	"modcheck/core/engine"
	"modcheck/internal/errors"
)

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, report *engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(errors.TypeInternal, "failed to encode report", err)
	}
	return nil
}
