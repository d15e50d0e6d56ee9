// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for shade.
//
// Configuration is read from ~/.shade/config.toml with sensible
// defaults, SHADE_* environment variable overrides, and validation.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/shade/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete shade configuration.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	System  SystemConfig  `toml:"system"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// ThemeConfig contains theme resolution settings.
type ThemeConfig struct {
	// Default is the built-in fallback theme used when neither a stored
	// nor a system preference is available: "light" or "dark".
	Default string `toml:"default"`
}

// SystemConfig contains system color-scheme monitoring settings.
type SystemConfig struct {
	// Follow enables the live system preference monitor. When false the
	// system preference is still consulted once at startup but changes
	// are not watched.
	Follow bool `toml:"follow"`
	// PollIntervalSecs is the polling cadence used when no watchable
	// settings file exists on this platform.
	PollIntervalSecs int `toml:"poll_interval_secs"`
}

// StorageConfig contains preference persistence settings.
type StorageConfig struct {
	// Backend selects the preference store: "file" or "sqlite".
	Backend string `toml:"backend"`
	// Path overrides the store location (empty = default under ~/.shade).
	Path string `toml:"path"`
}

// UIConfig contains output settings.
type UIConfig struct {
	// Compact trims the status and watch views to a single line each.
	Compact bool `toml:"compact"`
	// NoColor disables styled output regardless of TTY detection.
	NoColor bool `toml:"no_color"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Default: "light",
		},
		System: SystemConfig{
			Follow:           true,
			PollIntervalSecs: 5,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "",
		},
		UI: UIConfig{
			Compact: false,
			NoColor: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the shade configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".shade"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions tightens config file permissions to 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load loads configuration from ~/.shade/config.toml, falling back to
// defaults when the file is missing. Environment overrides are applied
// last, then the result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := ensureSecurePermissions(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration atomically with owner-only permissions.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// ENV OVERRIDES / DEFAULTS / VALIDATION
// =============================================================================

// ApplyEnvOverrides applies SHADE_* environment variables on top of the
// loaded configuration. Unset variables leave values untouched.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SHADE_DEFAULT_THEME"); v != "" {
		c.Theme.Default = strings.ToLower(v)
	}
	if v := os.Getenv("SHADE_FOLLOW_SYSTEM"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.System.Follow = b
		}
	}
	if v := os.Getenv("SHADE_POLL_INTERVAL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.System.PollIntervalSecs = n
		}
	}
	if v := os.Getenv("SHADE_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("SHADE_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.UI.NoColor = true
	}
}

// SetDefaults fills zero values left behind by a partial config file.
func (c *Config) SetDefaults() {
	if c.Theme.Default == "" {
		c.Theme.Default = "light"
	}
	if c.System.PollIntervalSecs <= 0 {
		c.System.PollIntervalSecs = 5
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (c *Config) Validate() error {
	switch c.Theme.Default {
	case "light", "dark":
	default:
		return fmt.Errorf("theme.default must be \"light\" or \"dark\", got %q", c.Theme.Default)
	}

	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage.backend must be \"file\" or \"sqlite\", got %q", c.Storage.Backend)
	}

	if c.System.PollIntervalSecs < 1 || c.System.PollIntervalSecs > 3600 {
		return fmt.Errorf("system.poll_interval_secs must be within 1-3600, got %d", c.System.PollIntervalSecs)
	}
	return nil
}

// StorePath returns the effective preference store path for the
// configured backend.
func (c *Config) StorePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == "sqlite" {
		return filepath.Join(dir, "shade.db"), nil
	}
	return filepath.Join(dir, "preferences.toml"), nil
}
