// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeranaias/shade/internal/theme"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "preferences.toml"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, ok := s.Get(theme.PreferenceKey); ok {
		t.Error("Expected empty store for missing file")
	}
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := s.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := s.Get(theme.PreferenceKey)
	if !ok || got != "dark" {
		t.Errorf("Get: got (%q, %v), want (\"dark\", true)", got, ok)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")

	s1, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s1.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	got, ok := s2.Get(theme.PreferenceKey)
	if !ok || got != "dark" {
		t.Errorf("Reopened Get: got (%q, %v), want (\"dark\", true)", got, ok)
	}
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, ok := s.Get(theme.PreferenceKey); ok {
		t.Error("Corrupt file must read as absent, not as a value")
	}
}

func TestFileStore_KeepsUnrelatedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := s.Set("ui.compact", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(theme.PreferenceKey, "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if v, ok := reopened.Get("ui.compact"); !ok || v != "true" {
		t.Errorf("Unrelated key lost: got (%q, %v)", v, ok)
	}
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Permissions: got %o, want 0600", perm)
	}
}
