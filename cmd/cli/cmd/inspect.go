// Package cmd - inspect command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modcheck/core/types"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <upgrade>",
	Short: "Show an upgrade's effects and static conflicts",
	Long: `Show catalog metadata for one upgrade, what it does to the vehicle,
and which other upgrades can never be combined with it.

Examples:
  modcheck inspect big-turbo
  modcheck inspect stage2-tune`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return fmt.Errorf("failed to load data set: %w", err)
	}

	key := types.UpgradeKey(args[0])
	detail, ok := eng.Inspect(key)
	if !ok {
		return fmt.Errorf("unknown upgrade: %s (try 'modcheck list')", key)
	}

	fmt.Printf("%s (%s)\n", detail.Name, detail.Key)
	if detail.Description != "" {
		fmt.Printf("  %s\n", detail.Description)
	}
	fmt.Printf("  Category: %s   Tier: %s\n", detail.Category, detail.Tier)

	sum, err := eng.Summarize(key)
	if err == nil {
		printList := func(label string, items []string) {
			if len(items) > 0 {
				fmt.Printf("  %-12s %s\n", label+":", strings.Join(items, ", "))
			}
		}
		printList("Improves", sum.Improves)
		printList("Modifies", sum.Modifies)
		printList("Stresses", sum.Stresses)
		printList("Invalidates", sum.Invalidates)
		printList("Compromises", sum.Compromises)
		if len(sum.Requires) > 0 {
			fmt.Printf("  Requires:    %s\n", joinKeys(sum.Requires))
		}
		if len(sum.Recommends) > 0 {
			fmt.Printf("  Recommends:  %s\n", joinKeys(sum.Recommends))
		}
	}

	if len(detail.ConflictsWith) > 0 {
		fmt.Printf("  Conflicts:   %s\n", joinKeys(detail.ConflictsWith))
	}
	return nil
}

func joinKeys(keys []types.UpgradeKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
