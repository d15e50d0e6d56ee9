// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides preference persistence backends for shade.
//
// Three implementations of theme.Store exist:
//
//   - FileStore: a TOML key/value file under ~/.shade, written
//     atomically
//   - SQLiteStore: a SQLite database that additionally records every
//     preference change in a history table
//   - MemoryStore: map-backed, for tests and ephemeral sessions
//
// The backend is selected by storage.backend in the configuration.
package store
