// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package surface applies a theme to the terminal rendering stack.
//
// Applying a theme is a pure projection: it flips lipgloss's
// dark-background flag (so every AdaptiveColor in the repo resolves for
// the new theme) and selects the paired chroma and glamour styles used
// by the preview pipeline. Applying the same theme twice is a no-op.
package surface
