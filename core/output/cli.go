package output

import (
	"fmt"
	"io"
	"strings"

	"modcheck/core/engine"
	"modcheck/core/types"
)

// CLIFormatter renders a report as a human-readable terminal summary
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the terminal report
func (f *CLIFormatter) Render(w io.Writer, report *engine.Report) error {
	var b strings.Builder

	b.WriteString("Build Check\n")
	b.WriteString("===========\n\n")

	b.WriteString("Selection:\n")
	if len(report.Selection) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, k := range report.Selection {
		fmt.Fprintf(&b, "  - %s\n", k)
	}
	b.WriteString("\n")

	if len(report.Conflicts) > 0 {
		fmt.Fprintf(&b, "Conflicts (%d):\n", len(report.Conflicts))
		for _, c := range report.Conflicts {
			marker := "soft"
			if c.Hard {
				marker = "HARD"
			}
			fmt.Fprintf(&b, "  [%s] %s %s\n", strings.ToUpper(string(c.Severity)), marker, c.Message)
			if len(c.ConflictsWith) > 0 {
				fmt.Fprintf(&b, "         conflicts with: %s\n", joinUpgrades(c.ConflictsWith))
			}
		}
		b.WriteString("\n")
	}

	if len(report.Advisories) > 0 {
		fmt.Fprintf(&b, "Advisories (%d):\n", len(report.Advisories))
		for _, a := range report.Advisories {
			fmt.Fprintf(&b, "  [%s] %s\n", strings.ToUpper(string(a.Severity)), a.Message)
			if len(a.Recommends) > 0 {
				fmt.Fprintf(&b, "         recommends: %s\n", joinUpgrades(a.Recommends))
			}
		}
		b.WriteString("\n")
	}

	if len(report.AffectedSystems) > 0 {
		b.WriteString("Affected systems: ")
		for i, s := range report.AffectedSystems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(s.String())
		}
		b.WriteString("\n")
	}

	if !report.HasFindings() {
		b.WriteString("No conflicts or advisories. Build looks consistent.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinUpgrades(keys []types.UpgradeKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
