// Package cmd provides the CLI commands for modcheck.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modcheck/adapters/hcl"
	"modcheck/core/engine"
	"modcheck/internal/config"
	"modcheck/internal/logging"
)

var (
	cfgFile  string
	verbose  bool
	dataDir  string
	platform string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "modcheck",
	Short: "Check vehicle upgrade builds for conflicts and missing support",
	Long: `modcheck analyzes a selection of vehicle upgrades against a typed
dependency graph of vehicle subsystems.

It detects hard conflicts (mutually exclusive parts, redundant tunes,
incompatible tuning methods), raises advisories for missing supporting
modifications, and reports which vehicle systems a build touches.

Examples:
  modcheck check big-turbo stage2-tune intake
  modcheck check --format json headers cat-back-exhaust
  modcheck inspect big-turbo
  modcheck serve --addr :8080`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.modcheck.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory of HCL data bundles (default: built-in data)")
	rootCmd.PersistentFlags().StringVar(&platform, "platform", "", "platform bundle to load from the data directory")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadEngine builds the engine from flags and config, preferring flags
func loadEngine() (*engine.Engine, error) {
	cfg := config.Get()
	dir := cfg.Data.Dir
	plat := cfg.Data.Platform
	if dataDir != "" {
		dir = dataDir
	}
	if platform != "" {
		plat = platform
	}
	return hcl.LoadEngine(dir, plat)
}

// cfgFormat resolves the default output format from config
func cfgFormat() string {
	if f := config.Get().Output.DefaultFormat; f != "" {
		return f
	}
	return "cli"
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("modcheck version 0.1.0")
	},
}
