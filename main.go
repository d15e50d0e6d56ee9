// shade - theme preference manager for terminal applications.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/shade/internal/cli"
	"github.com/jeranaias/shade/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	// Make ldflags-injected values visible to the version command.
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate

	cmd, args := cli.Parse()
	os.Exit(run(cmd, args))
}

func run(cmd cli.Command, args *cli.Args) int {
	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage()
		return cli.ExitOK

	case cli.CmdVersion:
		fmt.Printf("shade %s (commit %s, built %s)\n", cli.Version, cli.GitCommit, cli.BuildDate)
		return cli.ExitOK

	case cli.CmdConfig:
		return exitWith(cli.HandleConfig(args))

	case cli.CmdDoctor:
		return exitWith(cli.HandleDoctor(args))
	}

	// Everything below needs the full stack.
	app, err := cli.NewApp(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}
	defer app.Close()

	switch cmd {
	case cli.CmdStatus:
		return exitWith(cli.HandleStatus(app, args))

	case cli.CmdSet:
		return exitWith(cli.HandleSet(app, args))

	case cli.CmdToggle:
		return exitWith(cli.HandleToggle(app, args))

	case cli.CmdPreview:
		return exitWith(cli.HandlePreview(app, args))

	case cli.CmdHistory:
		return exitWith(cli.HandleHistory(app, args))

	case cli.CmdWatch:
		return exitWith(runWatch(app, args))
	}

	cli.PrintUsage()
	return cli.ExitUsageError
}

// runWatch runs the interactive watch view. Without a TTY it falls
// back to a one-shot status print, so `shade | cat` stays usable.
func runWatch(app *cli.App, args *cli.Args) error {
	if !cli.IsStdinTTY() || !cli.IsStdoutTTY() {
		return cli.HandleStatus(app, args)
	}

	compact := args.Quiet || app.Config.UI.Compact
	m := ui.NewModel(app.Ctrl, app.Store, app.System, compact)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func exitWith(err error) int {
	if err == nil {
		return cli.ExitOK
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return cli.ExitError
}
