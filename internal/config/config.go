// Package config loads tool configuration from the environment and an
// optional config file.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the tunable defaults a build run starts from. Command-line
// flags override these; these override the built-in defaults.
type Config struct {
	// Cargo is the cargo executable to invoke. Empty means the CARGO
	// environment variable, then "cargo" from PATH.
	Cargo string `mapstructure:"cargo"`

	// TempDir is the directory workspaces are created under. Empty means
	// the system temp directory.
	TempDir string `mapstructure:"tempDir"`

	// PyO3Version is the default managed pyo3 dependency mode: a released
	// version string or "source".
	PyO3Version string `mapstructure:"pyo3Version"`
}

// WithDefaults returns a copy with built-in defaults applied to empty fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PyO3Version == "" {
		out.PyO3Version = "0.13"
	}
	return &out
}

// DefaultConfigFile returns the conventional config file location,
// ~/.config/cratepy/config.yaml.
func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cratepy", "config.yaml"), nil
}
