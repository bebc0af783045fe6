// Package cmd - list command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"modcheck/core/catalog"
)

var listCategory string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the upgrades in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return fmt.Errorf("failed to load data set: %w", err)
	}
	cat := eng.Catalog()
	if cat == nil {
		return fmt.Errorf("no upgrade catalog configured")
	}

	var entries []catalog.Entry
	if listCategory != "" {
		entries = cat.ByCategory(catalog.Category(listCategory))
	} else {
		for _, k := range cat.Keys() {
			if e, ok := cat.Get(k); ok {
				entries = append(entries, e)
			}
		}
	}

	if len(entries) == 0 {
		fmt.Println("No upgrades found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-24s %-12s %-8s %s\n", e.Key, e.Category, e.Tier, e.Name)
	}
	return nil
}
