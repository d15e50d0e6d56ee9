// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive watch view for shade.
//
// The view shows the live theme state and lets the user toggle or set
// the theme from keybindings. System color-scheme changes arrive as
// ordinary messages and repaint the view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/shade/internal/theme"
	"github.com/jeranaias/shade/internal/ui/styles"
)

// =============================================================================
// KEY MAP
// =============================================================================

// KeyMap defines the watch view keybindings.
type KeyMap struct {
	Toggle key.Binding
	Light  key.Binding
	Dark   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default watch view keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "toggle"),
		),
		Light: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// =============================================================================
// MODEL
// =============================================================================

// systemChangeMsg carries a live system preference change.
type systemChangeMsg bool

// Model is the bubbletea model for `shade` with no arguments.
type Model struct {
	ctrl  *theme.Controller
	store theme.Store
	sys   theme.System

	styles  *styles.Styles
	keys    KeyMap
	compact bool

	changes     chan bool
	unsubscribe func()

	width int
	err   error
}

// NewModel creates the watch model. store and sys may be nil; the
// corresponding rows then show as unavailable.
func NewModel(ctrl *theme.Controller, st theme.Store, sys theme.System, compact bool) Model {
	m := Model{
		ctrl:    ctrl,
		store:   st,
		sys:     sys,
		styles:  styles.New(),
		keys:    DefaultKeyMap(),
		compact: compact,
		changes: make(chan bool, 8),
		width:   80,
	}
	if sys != nil {
		// The controller has its own subscription for state; this one
		// only exists so the view repaints.
		cancel, err := sys.Subscribe(func(dark bool) {
			select {
			case m.changes <- dark:
			default:
			}
		})
		if err == nil {
			m.unsubscribe = cancel
		}
	}
	return m
}

// Init starts listening for system changes.
func (m Model) Init() tea.Cmd {
	return m.waitForSystemChange()
}

func (m Model) waitForSystemChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		return systemChangeMsg(<-ch)
	}
}

// Update handles key presses and system change messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case systemChangeMsg:
		// The controller already handled the transition; keep waiting.
		return m, m.waitForSystemChange()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.unsubscribe != nil {
				m.unsubscribe()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			_, m.err = m.ctrl.Toggle()
			return m, nil

		case key.Matches(msg, m.keys.Light):
			m.err = m.ctrl.Set(theme.Light)
			return m, nil

		case key.Matches(msg, m.keys.Dark):
			m.err = m.ctrl.Set(theme.Dark)
			return m, nil
		}
	}
	return m, nil
}

// View renders the watch panel.
func (m Model) View() string {
	active := m.ctrl.Theme()

	if m.compact {
		return fmt.Sprintf("%s %s  %s\n",
			m.styles.Title.Render("shade"),
			m.styles.ThemeBadge.Render(active.String()),
			m.styles.ShortcutDesc.Render("t toggle · l light · d dark · q quit"))
	}

	rows := []string{
		m.row("Active", m.styles.ThemeBadge.Render(active.String())),
		m.row("Source", m.styles.SourceBadge.Render(m.ctrl.Source().String())),
		m.row("System", m.systemRow()),
		m.row("Stored", m.storedRow()),
	}

	if m.err != nil {
		rows = append(rows, m.styles.Error.Render(fmt.Sprintf("error: %v", m.err)))
	}

	help := m.helpRow()
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("shade")+" "+m.styles.Subtitle.Render("theme watch"),
		"",
		strings.Join(rows, "\n"),
		"",
		help,
	)
	return m.styles.Box.MaxWidth(m.width).Render(body) + "\n"
}

// row renders an aligned label/value pair. runewidth keeps the value
// column straight even if a label ever carries wide runes.
func (m Model) row(label, value string) string {
	const labelWidth = 8
	padded := label + strings.Repeat(" ", max(0, labelWidth-runewidth.StringWidth(label)))
	return m.styles.Label.Render(padded) + value
}

func (m Model) systemRow() string {
	if m.sys == nil {
		return m.styles.Label.Render("unavailable")
	}
	dark, ok := m.sys.PrefersDark()
	if !ok {
		return m.styles.Label.Render("undetected")
	}
	return m.styles.Value.Render(theme.FromDark(dark).String())
}

func (m Model) storedRow() string {
	if m.store == nil {
		return m.styles.Label.Render("unavailable")
	}
	raw, ok := m.store.Get(theme.PreferenceKey)
	if !ok {
		return m.styles.Label.Render("none")
	}
	if _, err := theme.Parse(raw); err != nil {
		return m.styles.Warning.Render(fmt.Sprintf("%s (unrecognized)", raw))
	}
	return m.styles.Value.Render(raw)
}

func (m Model) helpRow() string {
	bindings := []key.Binding{m.keys.Toggle, m.keys.Light, m.keys.Dark, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			m.styles.ShortcutKey.Render(b.Help().Key)+" "+
				m.styles.ShortcutDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}
