// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package surface

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/shade/internal/theme"
)

// =============================================================================
// STYLE PAIRING
// =============================================================================

// ChromaStyle returns the syntax highlighting style paired with t.
func ChromaStyle(t theme.Theme) string {
	if t.IsDark() {
		return "catppuccin-mocha"
	}
	return "catppuccin-latte"
}

// GlamourStyle returns the glamour standard style paired with t.
func GlamourStyle(t theme.Theme) string {
	if t.IsDark() {
		return "dark"
	}
	return "light"
}

// =============================================================================
// TERMINAL SURFACE
// =============================================================================

// Terminal implements theme.Surface for the terminal rendering stack.
type Terminal struct {
	mu      sync.Mutex
	applied theme.Theme
}

// NewTerminal creates an unapplied terminal surface.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Apply projects t onto the rendering stack. Re-applying the current
// theme changes nothing.
func (s *Terminal) Apply(t theme.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied == t {
		return
	}
	// The global flag is what makes lipgloss.AdaptiveColor pick the
	// light or dark variant everywhere downstream, the same way a root
	// attribute steers a stylesheet.
	lipgloss.SetHasDarkBackground(t.IsDark())
	s.applied = t
}

// Applied returns the last theme projected onto the surface, or ""
// when nothing has been applied yet.
func (s *Terminal) Applied() theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
