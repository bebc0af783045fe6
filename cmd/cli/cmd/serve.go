// Package cmd - serve command
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"modcheck/api"
	"modcheck/internal/config"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the analysis engine over HTTP.

Endpoints:
  POST /check      full analysis of a selection
  POST /conflict   conflict check for one candidate
  POST /resolve    apply a candidate to a selection
  GET  /upgrades   catalog listing and per-upgrade detail
  GET  /health     liveness probe`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return fmt.Errorf("failed to load data set: %w", err)
	}

	cfg := config.Get()
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := api.NewServer(eng, "0.1.0")
	return server.ListenAndServe(addr,
		time.Duration(cfg.Server.ReadTimeoutSeconds)*time.Second,
		time.Duration(cfg.Server.WriteTimeoutSeconds)*time.Second,
	)
}
