package config_test

import (
	"path/filepath"
	"testing"

	"modcheck/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.Default()
	if cfg.Server.Addr == "" {
		t.Error("default server addr is empty")
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format = %q", cfg.Output.DefaultFormat)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != config.Default().Server.Addr {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := config.Default()
	cfg.Server.Addr = ":9090"
	cfg.Data.Platform = "mk7-gti"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Addr != ":9090" || loaded.Data.Platform != "mk7-gti" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
