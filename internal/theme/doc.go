// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme owns the light/dark theme state for shade.
//
// The package has three parts:
//
//   - Theme: the two-value theme enum with strict parsing
//   - Controller: the state machine that reconciles the persisted
//     preference, the system color-scheme preference, and the theme
//     currently applied to the presentation surface
//   - the context provider: an explicit handle for reaching the
//     controller from call sites that do not own it
//
// # Resolution Rules
//
// At initialization the starting theme is resolved as:
//
//	stored preference ?? system preference ?? Light
//
// A stored preference, once written, wins over the system preference on
// every future initialization and over every live system change
// notification. The store is written back after every resolution, so an
// explicit choice made in one session is durable for the next.
//
// # Collaborators
//
// The controller talks to three small interfaces (Store, System,
// Surface). All of them may be nil or unavailable; initialization then
// degrades to the built-in default instead of failing. Adapters live in
// internal/store, internal/system and internal/surface.
package theme
