// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// codeblock.go - Syntax-highlighted code block rendering for previews.
package surface

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/shade/internal/theme"
)

// CodeBlock renders a fenced code block under a given theme.
type CodeBlock struct {
	Language string
	Code     string
	Theme    theme.Theme
	MaxWidth int
}

// NewCodeBlock creates a code block for the given theme.
func NewCodeBlock(language, code string, t theme.Theme) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		Theme:    t,
		MaxWidth: 80,
	}
}

// Render returns the highlighted block with line numbers and a
// language badge.
func (c CodeBlock) Render() string {
	code := strings.TrimSpace(c.Code)
	highlighted := Highlight(code, c.Language, c.Theme)
	lines := strings.Split(highlighted, "\n")

	lineNumStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	var rendered []string
	for i, line := range lines {
		rendered = append(rendered, lineNumStyle.Render(strconv.Itoa(i+1))+line)
	}
	content := strings.Join(rendered, "\n")

	var header string
	if c.Language != "" {
		header = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}).
			Bold(true).
			Render(c.Language) + "\n"
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}).
		Padding(1, 2).
		MaxWidth(maxWidth).
		Render(header + content)
}

// Highlight runs code through chroma with the style paired to t.
// On any failure the original code is returned unstyled.
func Highlight(code, language string, t theme.Theme) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(ChromaStyle(t))
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(sb.String(), "\n")
}
