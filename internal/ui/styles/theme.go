// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/output"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Mode is the configured theme name: auto, dark or light
	Mode string

	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// TERMINAL PANEL STYLES
	// ==========================================================================

	App       lipgloss.Style
	Panel     lipgloss.Style
	Banner    lipgloss.Style
	Prompt    lipgloss.Style
	InputText lipgloss.Style
	Hint      lipgloss.Style

	// ==========================================================================
	// OUTPUT STYLES
	// ==========================================================================

	Text         lipgloss.Style
	SkillName    lipgloss.Style
	SkillPercent lipgloss.Style
	lines        map[output.Style]lipgloss.Style

	// ==========================================================================
	// MODAL STYLES
	// ==========================================================================

	ModalBox        lipgloss.Style
	ModalTitle      lipgloss.Style
	ModalTitleAlert lipgloss.Style
	ModalHint       lipgloss.Style

	// ==========================================================================
	// QUICK COMMAND BAR STYLES
	// ==========================================================================

	QuickBar  lipgloss.Style
	QuickKey  lipgloss.Style
	QuickDesc lipgloss.Style

	// ==========================================================================
	// RAIN STYLES
	// ==========================================================================

	RainHeadStyle lipgloss.Style
	rainShades    []lipgloss.Style
}

// NewTheme creates a theme for mode ("auto", "dark" or "light"). Auto asks
// the terminal for its background colour.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		mode = "auto"
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         strings.ToLower(mode),
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(MatrixGreenDeep).
		Padding(0, 1)

	t.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(MatrixGreen)

	t.Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(MatrixGreen)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Output lines
	t.Text = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SkillName = lipgloss.NewStyle().
		Foreground(MatrixGreen)

	t.SkillPercent = lipgloss.NewStyle().
		Foreground(Amber)

	t.lines = map[output.Style]lipgloss.Style{
		output.StyleNone: t.Text,
		output.StyleCommand: lipgloss.NewStyle().
			Bold(true).
			Foreground(MatrixGreen),
		output.StyleHeading: lipgloss.NewStyle().
			Bold(true).
			Foreground(MatrixGreenDim),
		output.StyleAccessDenied: lipgloss.NewStyle().
			Bold(true).
			Foreground(Rose),
		output.StyleNetwork: lipgloss.NewStyle().
			Foreground(Cyan),
		output.StylePingSuccess: lipgloss.NewStyle().
			Bold(true).
			Foreground(Emerald),
		output.StylePingTime: lipgloss.NewStyle().
			Bold(true).
			Foreground(Amber),
		output.StyleGlitch: lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(Purple),
		output.StyleGitHash: lipgloss.NewStyle().
			Foreground(Amber),
		output.StyleProjectTitle: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(Purple),
	}

	// Modal
	t.ModalBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(MatrixGreen).
		Background(Overlay).
		Padding(1, 2)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(MatrixGreen).
		Align(lipgloss.Center)

	t.ModalTitleAlert = lipgloss.NewStyle().
		Bold(true).
		Blink(true).
		Foreground(Rose).
		Align(lipgloss.Center)

	t.ModalHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)

	// Quick commands
	t.QuickBar = lipgloss.NewStyle().
		Padding(0, 1)

	t.QuickKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Surface).
		Background(MatrixGreenDim).
		Padding(0, 1)

	t.QuickDesc = lipgloss.NewStyle().
		Foreground(MatrixGreen)

	// Rain
	t.RainHeadStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(RainHead)

	t.rainShades = make([]lipgloss.Style, len(RainShades))
	for i, c := range RainShades {
		t.rainShades[i] = lipgloss.NewStyle().Foreground(c)
	}
}

// LineStyle returns the style for a tag. Unknown tags render as plain text.
func (t *Theme) LineStyle(tag output.Style) lipgloss.Style {
	if s, ok := t.lines[tag]; ok {
		return s
	}
	return t.Text
}

// RenderLine renders one output line, drawing its emphasised substring in the
// emphasis style.
func (t *Theme) RenderLine(line output.Line) string {
	base := t.LineStyle(line.Style)
	if line.Emphasis == "" {
		return renderNonEmpty(base, line.Text)
	}

	idx := strings.Index(line.Text, line.Emphasis)
	if idx < 0 {
		return renderNonEmpty(base, line.Text)
	}

	before := line.Text[:idx]
	after := line.Text[idx+len(line.Emphasis):]
	return renderNonEmpty(base, before) +
		renderNonEmpty(t.LineStyle(line.EmphasisStyle), line.Emphasis) +
		renderNonEmpty(base, after)
}

func renderNonEmpty(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}

// RainStyle returns the style for a rain glyph of the given brightness.
// ok is false when the glyph is too faint to draw.
func (t *Theme) RainStyle(brightness float64) (style lipgloss.Style, ok bool) {
	return t.RainShade(RainShadeIndex(brightness))
}

// RainShade returns the style for a shade index as produced by
// RainShadeIndex.
func (t *Theme) RainShade(idx int) (style lipgloss.Style, ok bool) {
	switch {
	case idx < 0:
		return t.RainHeadStyle, true
	case idx >= len(t.rainShades):
		return lipgloss.Style{}, false
	default:
		return t.rainShades[idx], true
	}
}

// GlamourStyle returns the glamour standard style matching the background.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
