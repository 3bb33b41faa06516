// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"

	"github.com/jeranaias/termfolio/internal/util"
)

const idleHint = "Type 'help' for available commands. Tab completes, Ctrl+C quits."

// View renders the screen: the panel, or the open modal, over the rain.
func (m Model) View() string {
	if m.modal != nil {
		return m.rain.Compose(m.modal.View(), m.width, m.height)
	}
	return m.rain.Compose(m.renderPanel(), m.width, m.height)
}

func (m Model) renderPanel() string {
	var parts []string
	if m.bannerVisible {
		parts = append(parts, m.banner.View(), "")
	}
	parts = append(parts,
		m.viewport.View(),
		m.input.View(),
		m.renderStatus(),
	)
	if m.cfg.UI.ShowQuickCommands(m.width) {
		parts = append(parts, m.quick.View())
	}

	inner := m.innerWidth()
	return m.theme.Panel.
		Width(inner + m.theme.Panel.GetHorizontalPadding()).
		Height(m.innerHeight()).
		Render(strings.Join(parts, "\n"))
}

// renderStatus shows completion candidates, a status message or the idle
// hint, in that order of preference.
func (m Model) renderStatus() string {
	inner := m.innerWidth()

	if m.completion.Active() {
		values := make([]string, len(m.completion.Completions))
		for i, c := range m.completion.Completions {
			values[i] = c.Value
		}
		return m.theme.Hint.Render(util.TruncateWidth(strings.Join(values, "  "), inner))
	}
	if m.status != "" {
		return m.theme.Hint.Render(util.TruncateWidth(m.status, inner))
	}
	return m.theme.Hint.Render(util.TruncateWidth(idleHint, inner))
}
