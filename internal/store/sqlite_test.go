// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"path/filepath"
	"testing"

	"github.com/jeranaias/shade/internal/theme"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "shade.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SetGetRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)

	if _, ok := s.Get(theme.PreferenceKey); ok {
		t.Error("Expected empty store")
	}

	if err := s.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := s.Get(theme.PreferenceKey)
	if !ok || got != "dark" {
		t.Errorf("Get: got (%q, %v), want (\"dark\", true)", got, ok)
	}
}

func TestSQLiteStore_UpsertOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(theme.PreferenceKey, "light"); err != nil {
		t.Fatalf("Second set failed: %v", err)
	}

	got, _ := s.Get(theme.PreferenceKey)
	if got != "light" {
		t.Errorf("Get after overwrite: got %q, want \"light\"", got)
	}
}

func TestSQLiteStore_HistoryRecordsEveryWrite(t *testing.T) {
	s := newTestSQLiteStore(t)
	s.SetSource("resolution")
	if err := s.Set(theme.PreferenceKey, "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.SetSource("user")
	if err := s.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	records, err := s.History(0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("History: got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Value != "dark" || records[0].Source != "user" {
		t.Errorf("Newest record: got value=%q source=%q", records[0].Value, records[0].Source)
	}
	if records[1].Value != "light" || records[1].Source != "resolution" {
		t.Errorf("Oldest record: got value=%q source=%q", records[1].Value, records[1].Source)
	}
	for _, r := range records {
		if r.ID == "" {
			t.Error("History record missing ID")
		}
	}
}

func TestSQLiteStore_HistoryLimit(t *testing.T) {
	s := newTestSQLiteStore(t)
	for i := 0; i < 5; i++ {
		v := "light"
		if i%2 == 0 {
			v = "dark"
		}
		if err := s.Set(theme.PreferenceKey, v); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	records, err := s.History(3)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("History(3): got %d records", len(records))
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shade.db")

	s1, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := s1.Set(theme.PreferenceKey, "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s1.Close()

	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s2.Close()

	got, ok := s2.Get(theme.PreferenceKey)
	if !ok || got != "dark" {
		t.Errorf("Reopened Get: got (%q, %v), want (\"dark\", true)", got, ok)
	}
}
