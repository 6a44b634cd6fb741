package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vanzue/bbmark/internal/search"
)

// Config controls discovery and filtering behaviour. Every field is
// optional; a missing config file means defaults.
type Config struct {
	// Mode is the query matcher: "ranked" (default) or "tokens".
	Mode string `yaml:"mode"`
	// LogLevel is "debug" | "info" | "warn" | "error".
	LogLevel string `yaml:"log_level"`
	// LogFile is where debug logs go. Empty disables logging entirely;
	// the TUI owns the terminal, so there is no stderr fallback.
	LogFile string `yaml:"log_file"`
	// Browsers lists extra user-data roots scanned on top of the builtin
	// browser table.
	Browsers []BrowserEntry `yaml:"browsers"`
}

// BrowserEntry adds one extra user-data root to scan.
type BrowserEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Mode:     string(search.ModeRanked),
		LogLevel: "info",
	}
}

// Load reads the YAML config at path. A missing file is not an error and
// yields defaults; an unreadable or unparsable file yields defaults plus
// the error so the caller can warn.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	// Fill fields an explicit empty value would have cleared.
	defaults := Default()
	if cfg.Mode == "" {
		cfg.Mode = defaults.Mode
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/bbmark/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "bbmark", "config.yaml"), nil
}

// SearchMode maps the configured mode string onto a matcher. Anything
// other than "tokens" falls back to ranked.
func (c Config) SearchMode() search.Mode {
	if c.Mode == string(search.ModeTokens) {
		return search.ModeTokens
	}
	return search.ModeRanked
}
