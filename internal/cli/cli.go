// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for shade.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdWatch Command = iota // default: interactive watch view
	CmdStatus
	CmdSet
	CmdToggle
	CmdPreview
	CmdHistory
	CmdConfig
	CmdDoctor
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON    bool
	Quiet   bool
	NoColor bool

	// Command-specific
	Theme      string // set: requested theme
	File       string // preview: markdown file
	Limit      int    // history: -n
	Subcommand string // config: show|set|path
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `shade - theme preference manager for terminal applications

Shade owns the light/dark theme preference and keeps the persisted
preference, the system color scheme, and the rendering stack in sync.

Usage:
  shade                      Interactive watch view (default)
  shade status               Show active theme and preference sources
  shade set <light|dark>     Set the theme explicitly
  shade toggle               Switch to the opposite theme
  shade preview [file]       Render markdown or highlighted code under the active theme
  shade history [-n N]       Show recent preference changes (sqlite backend)
  shade config [show|set|path]  Configuration management
  shade doctor               Diagnose detectors and the preference store
  shade version              Show version information
  shade help                 Show this help

Flags:
  --json       Machine-readable output (status, history, doctor)
  --quiet      Suppress non-essential output
  --no-color   Disable styled output

Environment:
  SHADE_COLOR_SCHEME         Force the detected system preference (light|dark)
  SHADE_DEFAULT_THEME        Override theme.default
  SHADE_STORAGE_BACKEND      Override storage.backend (file|sqlite)
  NO_COLOR                   Disable styled output

Resolution order at startup: stored preference, then system preference,
then the built-in default. An explicit choice always wins over later
system changes.`

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Println(usageText)
}

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, *Args) {
	cmd, args, err := ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		PrintUsage()
		os.Exit(ExitUsageError)
	}
	return cmd, args
}

// ParseArgs parses an argument vector. Split out of Parse for tests.
func ParseArgs(argv []string) (Command, *Args, error) {
	args := &Args{Limit: 20}

	var positional []string
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "--json":
			args.JSON = true
		case a == "--quiet" || a == "-q":
			args.Quiet = true
		case a == "--no-color":
			args.NoColor = true
		case a == "--help" || a == "-h":
			return CmdHelp, args, nil
		case a == "--version" || a == "-v":
			return CmdVersion, args, nil
		case a == "-n" || a == "--limit":
			if i+1 >= len(argv) {
				return CmdHelp, nil, fmt.Errorf("%s requires a number", a)
			}
			i++
			n, err := strconv.Atoi(argv[i])
			if err != nil || n < 0 {
				return CmdHelp, nil, fmt.Errorf("invalid limit %q", argv[i])
			}
			args.Limit = n
		case strings.HasPrefix(a, "-"):
			return CmdHelp, nil, fmt.Errorf("unknown flag %q", a)
		default:
			positional = append(positional, a)
		}
	}
	args.Raw = positional

	if len(positional) == 0 {
		return CmdWatch, args, nil
	}

	switch positional[0] {
	case "status", "s":
		return CmdStatus, args, nil

	case "set":
		if len(positional) < 2 {
			return CmdHelp, nil, fmt.Errorf("set requires a theme: light or dark")
		}
		args.Theme = strings.ToLower(positional[1])
		return CmdSet, args, nil

	case "toggle", "t":
		return CmdToggle, args, nil

	case "preview":
		if len(positional) > 1 {
			args.File = positional[1]
		}
		return CmdPreview, args, nil

	case "history":
		return CmdHistory, args, nil

	case "config":
		args.Subcommand = "show"
		if len(positional) > 1 {
			args.Subcommand = positional[1]
		}
		if args.Subcommand == "set" {
			if len(positional) < 4 {
				return CmdHelp, nil, fmt.Errorf("config set requires a key and a value")
			}
			args.ConfigKey = positional[2]
			args.ConfigVal = positional[3]
		}
		return CmdConfig, args, nil

	case "doctor":
		return CmdDoctor, args, nil

	case "version":
		return CmdVersion, args, nil

	case "help":
		return CmdHelp, args, nil
	}

	return CmdHelp, nil, fmt.Errorf("unknown command %q", positional[0])
}
