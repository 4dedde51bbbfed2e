package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadToolConfigDefaults(t *testing.T) {
	cfg, err := loadToolConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Pretty {
		t.Fatalf("expected pretty disabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadToolConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
pretty = true
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadToolConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Pretty {
		t.Fatalf("expected pretty enabled")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadToolConfigBlankLevelKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
log_level = "  "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadToolConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	if _, err := loadToolConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}
