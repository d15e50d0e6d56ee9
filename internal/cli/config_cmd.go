// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - `shade config` handler.
package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/shade/internal/config"
)

// HandleConfig shows or edits the configuration. It deliberately does
// not build an App; editing config must work even when the store or
// the monitor cannot come up.
func HandleConfig(args *Args) error {
	switch args.Subcommand {
	case "show", "":
		return wrapErr("config", configShow())
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return wrapErr("config", err)
		}
		fmt.Println(path)
		return nil
	case "set":
		return wrapErr("config", configSet(args.ConfigKey, args.ConfigVal, args.Quiet))
	default:
		return wrapErr("config", fmt.Errorf("unknown subcommand %q (want show, set, or path)", args.Subcommand))
	}
}

func configShow() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}

// configSet updates one dotted key, validates the result, and saves
// atomically.
func configSet(key, value string, quiet bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "theme.default":
		cfg.Theme.Default = strings.ToLower(value)
	case "system.follow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("system.follow must be a boolean, got %q", value)
		}
		cfg.System.Follow = b
	case "system.poll_interval_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("system.poll_interval_secs must be a number, got %q", value)
		}
		cfg.System.PollIntervalSecs = n
	case "storage.backend":
		cfg.Storage.Backend = strings.ToLower(value)
	case "storage.path":
		cfg.Storage.Path = value
	case "ui.compact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.compact must be a boolean, got %q", value)
		}
		cfg.UI.Compact = b
	case "ui.no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.no_color must be a boolean, got %q", value)
		}
		cfg.UI.NoColor = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.EnsureConfigDir(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("Set %s = %s\n", key, value)
	}
	return nil
}
