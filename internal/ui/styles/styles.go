// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for shade.
// All colors use Lip Gloss AdaptiveColor, so the palette follows the
// dark-background flag the surface package flips on every theme apply.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

// Purple - Primary accent, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, keys, highlights
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, the active-theme badge
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Surface colors
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// Text colors
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// STYLE TABLE
// =============================================================================

// Styles holds the styled components for shade's views.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Label lipgloss.Style
	Value lipgloss.Style

	ThemeBadge  lipgloss.Style
	SourceBadge lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	Box lipgloss.Style
}

// New creates the style table.
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan),

		Subtitle: lipgloss.NewStyle().
			Foreground(TextSecondary).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(TextMuted),

		Value: lipgloss.NewStyle().
			Foreground(TextPrimary),

		ThemeBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(TextInverse).
			Background(Purple).
			Padding(0, 1),

		SourceBadge: lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Overlay).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(Emerald),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(Amber),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(Rose),

		ShortcutKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan),

		ShortcutDesc: lipgloss.NewStyle().
			Foreground(TextMuted),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Purple).
			Padding(1, 2),
	}
}
