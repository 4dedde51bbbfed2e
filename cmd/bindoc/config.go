package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type toolConfig struct {
	Pretty   bool
	LogLevel string
}

type fileConfig struct {
	Pretty   bool   `toml:"pretty"`
	LogLevel string `toml:"log_level"`
}

func defaultToolConfig() toolConfig {
	return toolConfig{Pretty: false, LogLevel: "info"}
}

// loadToolConfig reads path and overlays it on the defaults. An empty path
// returns the defaults; only keys present in the file override.
func loadToolConfig(path string) (toolConfig, error) {
	cfg := defaultToolConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load bindoc config: %w", err)
	}

	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("log_level") {
		if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
			cfg.LogLevel = lvl
		}
	}
	return cfg, nil
}
