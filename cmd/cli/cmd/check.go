// Package cmd - check command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modcheck/core/output"
	"modcheck/core/types"
)

var outputFormat string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [upgrade...]",
	Short: "Analyze a build selection for conflicts and advisories",
	Long: `Run the full analysis pipeline over a selection of upgrade keys.

Reports pairwise conflicts, scenario advisories for missing supporting
modifications, and the vehicle systems the build touches.

Examples:
  modcheck check big-turbo stage2-tune intake
  modcheck check --format json headers
  modcheck check coilovers-track lowering-springs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return fmt.Errorf("failed to load data set: %w", err)
	}

	keys := make([]types.UpgradeKey, len(args))
	for i, a := range args {
		keys[i] = types.UpgradeKey(a)
	}
	sel := types.NewSelection(keys...)

	if cat := eng.Catalog(); cat != nil {
		for _, k := range sel {
			if !cat.Has(k) {
				return fmt.Errorf("unknown upgrade: %s (try 'modcheck list')", k)
			}
		}
	}

	format := outputFormat
	if format == "" {
		format = cfgFormat()
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	formatter, err := output.New(f)
	if err != nil {
		return err
	}

	report := eng.Check(sel)
	if err := formatter.Render(os.Stdout, report); err != nil {
		return err
	}

	if len(report.HardConflicts()) > 0 {
		os.Exit(1)
	}
	return nil
}
