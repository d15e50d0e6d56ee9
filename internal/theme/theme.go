// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"errors"
	"fmt"
)

// =============================================================================
// THEME VALUE
// =============================================================================

// Theme is a UI color theme. Exactly two values are valid: Light and
// Dark. Anything else read from a store or the environment is treated
// as absent, never as an error.
type Theme string

const (
	// Light is the light theme.
	Light Theme = "light"
	// Dark is the dark theme.
	Dark Theme = "dark"
)

// PreferenceKey is the namespaced key under which the theme preference
// is persisted. It distinguishes the theme from unrelated stored data
// sharing the same store.
const PreferenceKey = "ui.theme"

// ErrInvalidTheme is returned when a caller supplies a theme value
// outside {light, dark}. State is left unchanged on rejection.
var ErrInvalidTheme = errors.New("invalid theme")

// Parse converts a raw string into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidTheme, s, Light, Dark)
}

// Valid reports whether t is one of the two recognized themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// FromDark maps a prefers-dark flag to a Theme.
func FromDark(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}
