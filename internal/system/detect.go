// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// detect.go - Color-scheme detectors for the system preference chain.
package system

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
)

// =============================================================================
// DETECTOR INTERFACE
// =============================================================================

// Detector probes one source of the system color-scheme preference.
type Detector interface {
	// Name returns a short identifier used in doctor output.
	Name() string

	// Available reports whether this detector can run on this host.
	Available() bool

	// Detect returns the preference and whether detection succeeded.
	Detect() (dark bool, ok bool)
}

// DefaultDetectors returns the detector chain in priority order:
// explicit env override first, then the desktop preference, then the
// terminal background.
func DefaultDetectors() []Detector {
	return []Detector{
		EnvDetector{},
		desktopDetector(),
		TerminalDetector{},
	}
}

// Resolve walks the chain and returns the first answer.
func Resolve(detectors []Detector) (dark bool, ok bool) {
	for _, d := range detectors {
		if !d.Available() {
			continue
		}
		if dark, ok := d.Detect(); ok {
			return dark, true
		}
	}
	return false, false
}

// =============================================================================
// ENV OVERRIDE
// =============================================================================

// EnvOverrideVar forces the detected system preference, mainly for
// tests and headless environments.
const EnvOverrideVar = "SHADE_COLOR_SCHEME"

// EnvDetector honors the SHADE_COLOR_SCHEME environment variable.
type EnvDetector struct{}

func (EnvDetector) Name() string { return "env" }

func (EnvDetector) Available() bool {
	return os.Getenv(EnvOverrideVar) != ""
}

func (EnvDetector) Detect() (bool, bool) {
	switch strings.ToLower(os.Getenv(EnvOverrideVar)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// =============================================================================
// DESKTOP PROBES
// =============================================================================

func desktopDetector() Detector {
	switch runtime.GOOS {
	case "darwin":
		return DarwinDetector{}
	default:
		return GsettingsDetector{}
	}
}

// DarwinDetector reads the macOS global interface style. The property
// is absent entirely in light mode, so a probe error means light.
type DarwinDetector struct{}

func (DarwinDetector) Name() string { return "macos-defaults" }

func (DarwinDetector) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := exec.LookPath("defaults")
	return err == nil
}

func (DarwinDetector) Detect() (bool, bool) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false, true
	}
	return strings.TrimSpace(string(out)) == "Dark", true
}

// GsettingsDetector reads the freedesktop color-scheme key used by
// GNOME and most portal-aware desktops.
type GsettingsDetector struct{}

func (GsettingsDetector) Name() string { return "gsettings" }

func (GsettingsDetector) Available() bool {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return false
	}
	_, err := exec.LookPath("gsettings")
	return err == nil
}

func (GsettingsDetector) Detect() (bool, bool) {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false, false
	}
	scheme := strings.TrimSpace(string(out))
	if scheme == "" || strings.Contains(scheme, "default") {
		// "default" carries no preference; let the chain fall through.
		return false, false
	}
	return strings.Contains(scheme, "prefer-dark"), true
}

// =============================================================================
// TERMINAL BACKGROUND
// =============================================================================

// TerminalDetector falls back to the terminal's reported background
// color.
type TerminalDetector struct{}

func (TerminalDetector) Name() string { return "terminal" }

func (TerminalDetector) Available() bool {
	// termenv answers a sane default even when stdout is not a TTY.
	return true
}

func (TerminalDetector) Detect() (bool, bool) {
	return termenv.HasDarkBackground(), true
}
