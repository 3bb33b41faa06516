// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/output"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// LOG RENDERING
// =============================================================================

// RenderLog renders the visible part of every log entry, one block after
// another, wrapped to width.
func RenderLog(theme *styles.Theme, entries []*output.Entry, width int) string {
	var lines []string
	for _, e := range entries {
		lines = append(lines, RenderBlock(theme, e.Visible(), width)...)
	}
	return strings.Join(lines, "\n")
}

// RenderBlock renders a single block as terminal lines.
func RenderBlock(theme *styles.Theme, b output.Block, width int) []string {
	switch block := b.(type) {
	case output.Line:
		return wrap(theme.RenderLine(block), width)

	case output.ProjectList:
		var lines []string
		for _, p := range block {
			lines = append(lines, wrap(theme.LineStyle(output.StyleProjectTitle).Render(p.Name), width)...)
			lines = append(lines, wrap("  "+theme.Text.Render(p.Description), width)...)
		}
		return lines

	case output.SkillList:
		return RenderSkillBars(theme, block, width)

	default:
		var lines []string
		for _, l := range b.Lines() {
			lines = append(lines, wrap(theme.RenderLine(l), width)...)
		}
		return lines
	}
}

// wrap soft-wraps a rendered line so it never exceeds width cells.
func wrap(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	if width <= 0 || lipgloss.Width(s) <= width {
		return []string{s}
	}
	return strings.Split(lipgloss.NewStyle().Width(width).Render(s), "\n")
}
