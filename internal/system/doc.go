// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package system detects the host's color-scheme preference and
// watches it for changes.
//
// Detection runs through a priority chain of detectors: an explicit
// environment override, a desktop probe (AppleInterfaceStyle on macOS,
// gsettings on freedesktop systems), and finally the terminal
// background reported by termenv. The first available detector that
// produces an answer wins.
//
// The Monitor implements theme.System: it resolves the chain on demand
// and publishes live changes to subscribers, watching the desktop
// settings database where one exists and polling otherwise.
package system
