// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - `shade status` handler.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/shade/internal/theme"
)

// statusReport is the machine-readable shape of `shade status --json`.
type statusReport struct {
	Active     string `json:"active"`
	Source     string `json:"source"`
	Degraded   bool   `json:"degraded"`
	System     string `json:"system,omitempty"`
	Stored     string `json:"stored,omitempty"`
	StoredOK   bool   `json:"stored_recognized"`
	Backend    string `json:"backend"`
	FollowsSys bool   `json:"follow_system"`
}

// HandleStatus prints the active theme and where it came from.
func HandleStatus(app *App, args *Args) error {
	report := buildStatus(app)

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return wrapErr("status", enc.Encode(report))
	}

	if args.Quiet || app.Config.UI.Compact {
		fmt.Printf("%s (%s)\n", report.Active, report.Source)
		return nil
	}

	fmt.Printf("Active theme:  %s\n", report.Active)
	fmt.Printf("Source:        %s\n", report.Source)
	if report.System != "" {
		fmt.Printf("System:        %s\n", report.System)
	} else {
		fmt.Printf("System:        undetected\n")
	}
	switch {
	case report.Stored == "":
		fmt.Printf("Stored:        none\n")
	case !report.StoredOK:
		fmt.Printf("Stored:        %s (unrecognized, ignored)\n", report.Stored)
	default:
		fmt.Printf("Stored:        %s\n", report.Stored)
	}
	fmt.Printf("Backend:       %s\n", report.Backend)
	if report.Degraded {
		fmt.Println("Note: the preference store was unavailable; this session will not persist.")
	}
	return nil
}

func buildStatus(app *App) statusReport {
	report := statusReport{
		Active:     app.Ctrl.Theme().String(),
		Source:     app.Ctrl.Source().String(),
		Degraded:   app.Ctrl.Degraded(),
		Backend:    app.Config.Storage.Backend,
		FollowsSys: app.Config.System.Follow,
	}

	if dark, ok := app.System.PrefersDark(); ok {
		report.System = theme.FromDark(dark).String()
	}

	if app.Store != nil {
		if raw, ok := app.Store.Get(theme.PreferenceKey); ok {
			report.Stored = raw
			_, err := theme.Parse(raw)
			report.StoredOK = err == nil
		}
	}
	return report
}
