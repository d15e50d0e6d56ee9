// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme_cmd.go - `shade set` and `shade toggle` handlers.
package cli

import (
	"fmt"

	"github.com/jeranaias/shade/internal/theme"
)

// HandleSet sets the theme explicitly and persists it.
func HandleSet(app *App, args *Args) error {
	next, err := theme.Parse(args.Theme)
	if err != nil {
		return wrapErr("set", err)
	}
	if err := app.Ctrl.Set(next); err != nil {
		return wrapErr("set", err)
	}
	if !args.Quiet {
		fmt.Printf("Theme set to %s\n", next)
	}
	return nil
}

// HandleToggle switches to the opposite theme and persists it.
func HandleToggle(app *App, args *Args) error {
	next, err := app.Ctrl.Toggle()
	if err != nil {
		return wrapErr("toggle", err)
	}
	if !args.Quiet {
		fmt.Printf("Theme set to %s\n", next)
	}
	return nil
}
