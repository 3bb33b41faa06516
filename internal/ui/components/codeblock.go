// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// ShellPrompt prefixes the command in a CommandBox.
const ShellPrompt = "$ "

// =============================================================================
// COMMAND BOX
// =============================================================================

// CommandBox shows a shell command, highlighted, in a red frame. The ACCESS
// DENIED modal uses it for the command that was refused.
type CommandBox struct {
	theme   *styles.Theme
	command string
	width   int
}

// NewCommandBox creates a box for command at most width cells wide.
func NewCommandBox(theme *styles.Theme, command string, width int) CommandBox {
	return CommandBox{theme: theme, command: strings.TrimSpace(command), width: width}
}

// View renders the framed command on a single line, cut to fit.
func (c CommandBox) View() string {
	line := ShellPrompt + c.command
	if c.theme != nil && c.theme.ColorProfile != termenv.Ascii {
		line = ShellPrompt + highlightShell(c.command, c.chromaStyle())
	}

	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Rose).
		Padding(0, 1)
	inner := max(c.width-frame.GetHorizontalFrameSize(), 1)

	return frame.Render(lipgloss.NewStyle().MaxWidth(inner).Render(line))
}

func (c CommandBox) chromaStyle() string {
	if c.theme.IsDark {
		return "monokai"
	}
	return "github"
}

// highlightShell colours a shell command for a 256-colour terminal. The
// command comes back unchanged if chroma cannot tokenise it.
func highlightShell(command, style string) string {
	lexer := lexers.Get("bash")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	s := chromaStyles.Get(style)
	if s == nil {
		s = chromaStyles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, command)
	if err != nil {
		return command
	}

	var buf strings.Builder
	if err := formatters.TTY256.Format(&buf, s, iterator); err != nil {
		return command
	}
	return strings.TrimRight(buf.String(), "\n")
}
