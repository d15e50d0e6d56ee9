// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared wiring for command handlers.
//
// Every command that touches the theme goes through the same assembly:
// load config, open the preference store, build the system monitor,
// attach the terminal surface, and initialize the controller. A
// collaborator that fails to come up is logged and left nil; the
// controller degrades instead of the command dying before it starts.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/shade/internal/config"
	"github.com/jeranaias/shade/internal/store"
	"github.com/jeranaias/shade/internal/surface"
	"github.com/jeranaias/shade/internal/system"
	"github.com/jeranaias/shade/internal/theme"
)

// App bundles the collaborators behind one controller instance.
type App struct {
	Config  *config.Config
	Store   theme.Store
	Monitor *system.Monitor
	System  theme.System
	Surface *surface.Terminal
	Ctrl    *theme.Controller

	storeClose func() error
}

// NewApp assembles and initializes the full stack. Quiet suppresses
// degradation warnings.
func NewApp(args *Args) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if args.NoColor {
		cfg.UI.NoColor = true
	}
	applyOutputPrefs(cfg)

	app := &App{Config: cfg}

	st, closer, err := store.Open(cfg)
	if err != nil {
		// RELIABILITY: a broken store degrades the session instead of
		// aborting it. The resolved theme just will not persist.
		if !args.Quiet {
			fmt.Fprintf(os.Stderr, "Warning: preference store unavailable: %v\n", err)
		}
	} else {
		app.Store = st
		app.storeClose = closer
	}

	app.Monitor = system.NewMonitor(time.Duration(cfg.System.PollIntervalSecs) * time.Second)
	app.System = app.Monitor
	if !cfg.System.Follow {
		app.System = system.QueryOnly(app.Monitor)
	}

	app.Surface = surface.NewTerminal()

	// Validate() has already constrained theme.default to light/dark.
	def, _ := theme.Parse(cfg.Theme.Default)
	app.Ctrl = theme.NewWithDefault(app.Store, app.System, app.Surface, def)

	// History rows written during startup resolution are not user
	// actions; tag them so `shade history` can tell the two apart.
	if s, ok := app.Store.(*store.SQLiteStore); ok {
		s.SetSource("resolution")
		app.Ctrl.Initialize()
		s.SetSource("user")
	} else {
		app.Ctrl.Initialize()
	}

	return app, nil
}

// applyOutputPrefs projects output preferences onto the rendering
// stack before any styled output happens. Dropping to the Ascii
// profile strips every color and attribute lipgloss would emit.
func applyOutputPrefs(cfg *config.Config) {
	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SQLite returns the store as a SQLiteStore when that backend is in
// use.
func (a *App) SQLite() (*store.SQLiteStore, bool) {
	s, ok := a.Store.(*store.SQLiteStore)
	return s, ok
}

// Close releases the controller subscription, the monitor, and the
// store, in that order.
func (a *App) Close() {
	a.Ctrl.Close()
	if a.Monitor != nil {
		a.Monitor.Close()
	}
	if a.storeClose != nil {
		if err := a.storeClose(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing preference store: %v\n", err)
		}
	}
}
