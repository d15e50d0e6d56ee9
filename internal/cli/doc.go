// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing and command handlers for the
// shade binary.
//
// Handlers always return errors; main maps them to exit codes. No
// handler prints an error and swallows it.
package cli
