// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// QUICK COMMAND BAR
// =============================================================================

// QuickCommand binds a function key to a command submission.
type QuickCommand struct {
	Binding key.Binding
	Command string
}

// DefaultQuickCommands are the F1-F8 shortcuts.
func DefaultQuickCommands() []QuickCommand {
	commands := []string{
		"help",
		"about",
		"projects",
		"skills",
		"./run --profile",
		"cat skills.txt",
		"ls projects/",
		"git log --oneline",
	}
	out := make([]QuickCommand, len(commands))
	for i, cmd := range commands {
		k := "f" + string(rune('1'+i))
		out[i] = QuickCommand{
			Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(strings.ToUpper(k), cmd)),
			Command: cmd,
		}
	}
	return out
}

// QuickBar renders the shortcuts as a wrapped footer.
type QuickBar struct {
	Items []QuickCommand
	Width int
	theme *styles.Theme
}

// NewQuickBar creates a bar with the default shortcuts.
func NewQuickBar(theme *styles.Theme) *QuickBar {
	return &QuickBar{
		Items: DefaultQuickCommands(),
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the available width.
func (q *QuickBar) SetWidth(width int) {
	q.Width = width
}

// Match returns the command bound to a key name such as "f3".
func (q *QuickBar) Match(keyName string) (string, bool) {
	for _, item := range q.Items {
		for _, k := range item.Binding.Keys() {
			if k == keyName {
				return item.Command, true
			}
		}
	}
	return "", false
}

// View renders the items, wrapping to as many lines as the width needs.
func (q *QuickBar) View() string {
	avail := q.Width - q.theme.QuickBar.GetHorizontalPadding()

	var lines []string
	var current []string
	currentWidth := 0

	for _, item := range q.Items {
		h := item.Binding.Help()
		cell := q.theme.QuickKey.Render(h.Key) + " " + q.theme.QuickDesc.Render(h.Desc)
		w := lipgloss.Width(cell)

		if currentWidth > 0 && currentWidth+2+w > avail {
			lines = append(lines, strings.Join(current, "  "))
			current, currentWidth = nil, 0
		}
		if currentWidth > 0 {
			currentWidth += 2
		}
		current = append(current, cell)
		currentWidth += w
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, "  "))
	}
	return q.theme.QuickBar.Render(strings.Join(lines, "\n"))
}
