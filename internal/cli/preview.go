// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// preview.go - `shade preview` handler.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/shade/internal/surface"
)

// HandlePreview renders a document under the active theme: the
// built-in sample, a markdown file, or any other file as a
// syntax-highlighted code block.
func HandlePreview(app *App, args *Args) error {
	width := TerminalWidth()
	if width > 100 {
		width = 100
	}
	active := app.Ctrl.Theme()

	md := surface.SampleDoc
	if args.File != "" {
		data, err := os.ReadFile(args.File)
		if err != nil {
			return wrapErr("preview", fmt.Errorf("read %s: %w", args.File, err))
		}
		ext := strings.ToLower(filepath.Ext(args.File))
		if ext != ".md" && ext != ".markdown" {
			block := surface.NewCodeBlock(languageForExt(ext), string(data), active)
			block.MaxWidth = width
			fmt.Println(block.Render())
			return nil
		}
		md = string(data)
	}

	out, err := surface.RenderMarkdown(md, active, width)
	if err != nil {
		return wrapErr("preview", err)
	}
	fmt.Print(out)
	return nil
}

// languageForExt maps common file extensions to chroma lexer names.
// Unknown extensions return "" and chroma falls back to analysis.
func languageForExt(ext string) string {
	switch ext {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".rs":
		return "rust"
	case ".js":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".sh", ".bash":
		return "bash"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".sql":
		return "sql"
	case ".c":
		return "c"
	case ".html":
		return "html"
	case ".css":
		return "css"
	default:
		return ""
	}
}
