// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit codes and command error wrapping.
package cli

import "fmt"

// Exit codes returned by the shade binary.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitUsageError = 2
)

// CommandError wraps a failure with the command that produced it, so
// main can print one consistent line and pick the exit code.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// wrapErr tags err with the command name, passing nil through.
func wrapErr(command string, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Command: command, Err: err}
}
