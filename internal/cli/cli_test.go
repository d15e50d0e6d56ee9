// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"
)

func TestParseArgs_DefaultIsWatch(t *testing.T) {
	cmd, args, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if cmd != CmdWatch {
		t.Errorf("empty argv: got command %d, want CmdWatch", cmd)
	}
	if args.JSON || args.Quiet {
		t.Error("empty argv must not set flags")
	}
}

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"set", "dark"}, CmdSet},
		{[]string{"toggle"}, CmdToggle},
		{[]string{"t"}, CmdToggle},
		{[]string{"preview"}, CmdPreview},
		{[]string{"history"}, CmdHistory},
		{[]string{"config"}, CmdConfig},
		{[]string{"doctor"}, CmdDoctor},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
	}
	for _, tt := range tests {
		cmd, _, err := ParseArgs(tt.argv)
		if err != nil {
			t.Errorf("ParseArgs(%v) failed: %v", tt.argv, err)
			continue
		}
		if cmd != tt.want {
			t.Errorf("ParseArgs(%v): got %d, want %d", tt.argv, cmd, tt.want)
		}
	}
}

func TestParseArgs_SetRequiresTheme(t *testing.T) {
	if _, _, err := ParseArgs([]string{"set"}); err == nil {
		t.Error("bare set must fail")
	}

	_, args, err := ParseArgs([]string{"set", "DARK"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if args.Theme != "dark" {
		t.Errorf("theme arg not lowercased: %q", args.Theme)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args, err := ParseArgs([]string{"--json", "status", "--quiet", "--no-color"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if cmd != CmdStatus {
		t.Errorf("got command %d, want CmdStatus", cmd)
	}
	if !args.JSON || !args.Quiet || !args.NoColor {
		t.Errorf("flags not parsed: %+v", args)
	}
}

func TestParseArgs_HistoryLimit(t *testing.T) {
	_, args, err := ParseArgs([]string{"history", "-n", "5"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if args.Limit != 5 {
		t.Errorf("limit: got %d, want 5", args.Limit)
	}

	if _, _, err := ParseArgs([]string{"history", "-n", "nope"}); err == nil {
		t.Error("non-numeric limit must fail")
	}
	if _, _, err := ParseArgs([]string{"history", "-n"}); err == nil {
		t.Error("dangling -n must fail")
	}
}

func TestParseArgs_ConfigSet(t *testing.T) {
	_, args, err := ParseArgs([]string{"config", "set", "theme.default", "dark"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if args.Subcommand != "set" || args.ConfigKey != "theme.default" || args.ConfigVal != "dark" {
		t.Errorf("config set not parsed: %+v", args)
	}

	if _, _, err := ParseArgs([]string{"config", "set", "theme.default"}); err == nil {
		t.Error("config set without a value must fail")
	}
}

func TestParseArgs_UnknownInput(t *testing.T) {
	if _, _, err := ParseArgs([]string{"frobnicate"}); err == nil {
		t.Error("unknown command must fail")
	}
	if _, _, err := ParseArgs([]string{"--frobnicate"}); err == nil {
		t.Error("unknown flag must fail")
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := wrapErr("status", inner)
	if !errors.Is(err, inner) {
		t.Error("CommandError must unwrap to the inner error")
	}
	if wrapErr("status", nil) != nil {
		t.Error("wrapErr(nil) must be nil")
	}
}
