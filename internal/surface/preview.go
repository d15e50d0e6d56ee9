// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// preview.go - Markdown preview rendering under the active theme.
package surface

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/shade/internal/theme"
)

// SampleDoc is the built-in document rendered by `shade preview` when
// no file is given. It exercises headings, emphasis, and a fenced code
// block, so both the glamour style and the chroma pairing are visible.
const SampleDoc = "# shade\n" +
	"\n" +
	"Theme preference manager for terminal applications.\n" +
	"\n" +
	"The active theme steers **every** adaptive color below, plus the\n" +
	"syntax highlighting of fenced code:\n" +
	"\n" +
	"```go\n" +
	"func main() {\n" +
	"\tc := theme.New(store, monitor, surface)\n" +
	"\tc.Initialize()\n" +
	"\tfmt.Println(c.Theme())\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"> Stored preference beats system preference, every session.\n"

// RenderMarkdown renders markdown under the glamour style paired with
// t, word-wrapped to width.
func RenderMarkdown(md string, t theme.Theme, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(GlamourStyle(t)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
