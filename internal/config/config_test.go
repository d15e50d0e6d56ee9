// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme.Default != "light" {
		t.Errorf("Theme.Default: got %q, want \"light\"", cfg.Theme.Default)
	}
	if !cfg.System.Follow {
		t.Error("System.Follow: expected true by default")
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend: got %q, want \"file\"", cfg.Storage.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must validate: %v", err)
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Theme.Default != "light" {
		t.Errorf("Expected defaults, got theme.default=%q", cfg.Theme.Default)
	}
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[theme]
default = "dark"

[system]
follow = false
poll_interval_secs = 30

[storage]
backend = "sqlite"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("theme.default: got %q, want \"dark\"", cfg.Theme.Default)
	}
	if cfg.System.Follow {
		t.Error("system.follow: got true, want false")
	}
	if cfg.System.PollIntervalSecs != 30 {
		t.Errorf("poll_interval_secs: got %d, want 30", cfg.System.PollIntervalSecs)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("storage.backend: got %q, want \"sqlite\"", cfg.Storage.Backend)
	}
}

func TestLoadFrom_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\ndefault = \"dark\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.System.PollIntervalSecs != 5 {
		t.Errorf("poll_interval_secs not defaulted: got %d", cfg.System.PollIntervalSecs)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("storage.backend not defaulted: got %q", cfg.Storage.Backend)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad theme", func(c *Config) { c.Theme.Default = "sepia" }},
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"zero poll interval", func(c *Config) { c.System.PollIntervalSecs = 0 }},
		{"huge poll interval", func(c *Config) { c.System.PollIntervalSecs = 100000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate: expected error, got nil")
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SHADE_DEFAULT_THEME", "DARK")
	t.Setenv("SHADE_FOLLOW_SYSTEM", "false")
	t.Setenv("SHADE_STORAGE_BACKEND", "sqlite")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Theme.Default != "dark" {
		t.Errorf("theme.default: got %q, want \"dark\"", cfg.Theme.Default)
	}
	if cfg.System.Follow {
		t.Error("system.follow: expected env override to false")
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("storage.backend: got %q, want \"sqlite\"", cfg.Storage.Backend)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Theme.Default = "dark"
	cfg.Storage.Backend = "sqlite"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Theme.Default != "dark" || loaded.Storage.Backend != "sqlite" {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Permissions: got %o, want 0600", perm)
	}
}

func TestStorePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "/tmp/custom.toml"
	path, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath failed: %v", err)
	}
	if path != "/tmp/custom.toml" {
		t.Errorf("StorePath: got %q, want explicit override", path)
	}
}
