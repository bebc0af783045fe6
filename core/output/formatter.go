// Package output renders analysis reports for humans and machines.
package output

import (
	"io"

	"modcheck/core/engine"
	"modcheck/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied string to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCLI, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown output format %q (want cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *engine.Report) error
}

// New returns the formatter for a format type
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "no formatter registered for %q", format)
	}
}
