// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/anim"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/rain"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// ModalHint is shown at the bottom of every modal.
const ModalHint = "esc / enter / q to close"

const (
	modalMaxWidth = 60
	modalRainRows = 10
)

// =============================================================================
// MODAL OVERLAY
// =============================================================================

// Modal renders an easter-egg overlay. Matrix modals carry their own rain
// animation, which must be stopped with Close.
type Modal struct {
	spec  commands.Modal
	theme *styles.Theme
	rain  *RainView

	screenW int
	screenH int

	// glamour output cached per inner width
	body      string
	bodyWidth int
}

// NewModal builds the overlay for spec. frame and resetChance configure the
// in-modal rain when the modal asks for one.
func NewModal(theme *styles.Theme, spec commands.Modal, frame time.Duration, resetChance float64, opts ...rain.Option) *Modal {
	m := &Modal{
		spec:    spec,
		theme:   theme,
		screenW: 80,
		screenH: 24,
	}
	if spec.Rain {
		opts = append([]rain.Option{rain.WithResetChance(resetChance)}, opts...)
		m.rain = NewRainView(theme, m.innerWidth(), modalRainRows, frame, opts...)
	}
	return m
}

// Kind returns the modal kind.
func (m *Modal) Kind() commands.ModalKind { return m.spec.Kind }

// Title returns the modal title.
func (m *Modal) Title() string { return m.spec.Title }

// Rain returns the in-modal animation, or nil.
func (m *Modal) Rain() *RainView { return m.rain }

// Handle returns the animation handle, or nil for modals without rain.
func (m *Modal) Handle() anim.Handle {
	if m.rain == nil {
		return nil
	}
	return m.rain.Handle()
}

// Start begins the in-modal animation.
func (m *Modal) Start() tea.Cmd {
	if m.rain == nil {
		return nil
	}
	return m.rain.Start()
}

// Update advances the in-modal rain when msg belongs to it.
func (m *Modal) Update(msg anim.FrameMsg) (tea.Cmd, bool) {
	if m.rain == nil {
		return nil, false
	}
	return m.rain.Update(msg)
}

// Close stops the in-modal animation. It is safe to call more than once.
func (m *Modal) Close() {
	if m.rain != nil {
		m.rain.Stop()
	}
}

// SetSize records the screen size the modal is centred on.
func (m *Modal) SetSize(width, height int) {
	m.screenW = width
	m.screenH = height
	if m.rain != nil {
		m.rain.Resize(m.innerWidth(), modalRainRows)
	}
}

func (m *Modal) boxWidth() int {
	return max(min(modalMaxWidth, m.screenW-4), 20)
}

func (m *Modal) innerWidth() int {
	return max(m.boxWidth()-m.theme.ModalBox.GetHorizontalFrameSize(), 10)
}

// View renders the boxed modal.
func (m *Modal) View() string {
	inner := m.innerWidth()

	titleStyle := m.theme.ModalTitle
	if m.spec.Kind == commands.ModalAccessDenied {
		titleStyle = m.theme.ModalTitleAlert
	}

	parts := []string{titleStyle.Width(inner).Render(m.spec.Title)}
	if body := m.renderBody(inner); body != "" {
		parts = append(parts, "", body)
	}
	if m.spec.Code != "" {
		parts = append(parts, "", NewCommandBox(m.theme, m.spec.Code, inner).View())
	}
	if m.rain != nil {
		parts = append(parts, "", m.rain.View())
	}
	parts = append(parts, "", m.theme.ModalHint.Width(inner).Render(ModalHint))

	return m.theme.ModalBox.Width(inner + m.theme.ModalBox.GetHorizontalPadding()).
		Render(strings.Join(parts, "\n"))
}

// renderBody renders the body paragraphs through glamour, falling back to
// plain wrapped text if the renderer fails.
func (m *Modal) renderBody(width int) string {
	if len(m.spec.Body) == 0 {
		return ""
	}
	if m.body != "" && m.bodyWidth == width {
		return m.body
	}

	md := strings.Join(m.spec.Body, "\n\n")
	out, err := RenderMarkdown(md, m.theme.GlamourStyle(), width)
	if err != nil {
		out = lipgloss.NewStyle().Width(width).Render(strings.Join(m.spec.Body, "\n"))
	}
	m.body, m.bodyWidth = out, width
	return out
}

// Bounds returns the box position and size when centred on the screen.
func (m *Modal) Bounds() (x, y, w, h int) {
	view := m.View()
	w, h = lipgloss.Width(view), lipgloss.Height(view)
	x, y = Centre(m.screenW, m.screenH, w, h)
	return x, y, w, h
}

// Contains reports whether a screen cell lies inside the box.
func (m *Modal) Contains(cellX, cellY int) bool {
	x, y, w, h := m.Bounds()
	return cellX >= x && cellX < x+w && cellY >= y && cellY < y+h
}

// RenderMarkdown renders md with a glamour standard style ("dark" or
// "light") wrapped to width. Surrounding blank lines are trimmed.
func RenderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
