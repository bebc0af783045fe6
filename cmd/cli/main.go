// Package main is the entry point for the modcheck CLI.
package main

import (
	"os"

	"modcheck/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
