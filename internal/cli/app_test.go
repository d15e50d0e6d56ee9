// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/shade/internal/config"
	"github.com/jeranaias/shade/internal/store"
)

func TestApplyOutputPrefs_NoColorDropsToAscii(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	lipgloss.SetColorProfile(termenv.TrueColor)

	cfg := config.Default()
	cfg.UI.NoColor = true
	applyOutputPrefs(cfg)

	if lipgloss.ColorProfile() != termenv.Ascii {
		t.Errorf("no_color must drop the profile to Ascii, got %v", lipgloss.ColorProfile())
	}
}

func TestApplyOutputPrefs_DefaultLeavesProfileAlone(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	lipgloss.SetColorProfile(termenv.TrueColor)

	applyOutputPrefs(config.Default())

	if lipgloss.ColorProfile() != termenv.TrueColor {
		t.Errorf("profile must be untouched without no_color, got %v", lipgloss.ColorProfile())
	}
}

func TestHistoryRows_RFC3339Timestamps(t *testing.T) {
	when := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	rows := historyRows([]store.ChangeRecord{
		{Value: "dark", Source: "user", ChangedAt: when},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ChangedAt != "2026-08-23T10:30:00Z" {
		t.Errorf("changed_at not RFC 3339: %q", rows[0].ChangedAt)
	}
	if parsed, err := time.Parse(time.RFC3339, rows[0].ChangedAt); err != nil || !parsed.Equal(when) {
		t.Errorf("changed_at does not round-trip through RFC 3339: %q (%v)", rows[0].ChangedAt, err)
	}
}

func TestFormatChangeRecord(t *testing.T) {
	when := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	line := formatChangeRecord(store.ChangeRecord{Value: "dark", Source: "user", ChangedAt: when})

	if !strings.Contains(line, "2026-08-23 10:30:00") {
		t.Errorf("line missing timestamp: %q", line)
	}
	if !strings.Contains(line, "dark") || !strings.Contains(line, "user") {
		t.Errorf("line missing value or source: %q", line)
	}
}
