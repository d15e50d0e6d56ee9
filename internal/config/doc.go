// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for shade.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SHADE_*)
//   - ~/.shade/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	backend := cfg.Storage.Backend
//	follow := cfg.System.Follow
package config
