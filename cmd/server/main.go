// Package main - entry point for the modcheck API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"modcheck/adapters/hcl"
	"modcheck/api"
	"modcheck/internal/config"
	"modcheck/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (default from config, :8080)")
	cfgPath := flag.String("config", "", "path to config file")
	dataDir := flag.String("data", "", "directory of HCL data bundles (default: built-in data)")
	platform := flag.String("platform", "", "platform bundle to load from the data directory")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}

	dir := cfg.Data.Dir
	plat := cfg.Data.Platform
	if *dataDir != "" {
		dir = *dataDir
	}
	if *platform != "" {
		plat = *platform
	}
	eng, err := hcl.LoadEngine(dir, plat)
	if err != nil {
		log.Fatalf("failed to load data set: %v", err)
	}

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	apiServer := api.NewServer(eng, version)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("modcheck server v%s\n", version)
	fmt.Printf("  API: http://localhost%s/api\n", listenAddr)

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
