// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/anim"
	"github.com/jeranaias/termfolio/internal/rain"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// RAIN VIEW
// =============================================================================

// RainView draws a rain grid and drives it with its own ticker. A nil
// *RainView renders as blank space.
type RainView struct {
	grid   *rain.Grid
	ticker *anim.Ticker
	theme  *styles.Theme
}

// NewRainView creates a rain animation covering width x height cells.
func NewRainView(theme *styles.Theme, width, height int, frame time.Duration, opts ...rain.Option) *RainView {
	return &RainView{
		grid:   rain.New(width, height, opts...),
		ticker: anim.NewTicker(frame),
		theme:  theme,
	}
}

// Grid exposes the simulation.
func (r *RainView) Grid() *rain.Grid { return r.grid }

// Handle returns the animation handle.
func (r *RainView) Handle() anim.Handle { return r.ticker }

// Start schedules the first frame.
func (r *RainView) Start() tea.Cmd { return r.ticker.Start() }

// Stop ends the animation; frames already in flight are ignored.
func (r *RainView) Stop() { r.ticker.Stop() }

// SetFrame changes the frame interval.
func (r *RainView) SetFrame(d time.Duration) { r.ticker.SetInterval(d) }

// SetTheme swaps the palette used for glyphs.
func (r *RainView) SetTheme(theme *styles.Theme) { r.theme = theme }

// Resize follows the terminal size.
func (r *RainView) Resize(width, height int) { r.grid.Resize(width, height) }

// Update advances the grid when msg is one of this view's frames.
func (r *RainView) Update(msg anim.FrameMsg) (tea.Cmd, bool) {
	next, ok := r.ticker.Accept(msg)
	if !ok {
		return nil, false
	}
	r.grid.Step()
	return next, true
}

// Prime advances the grid n frames without the ticker, for still renders.
func (r *RainView) Prime(n int) {
	for i := 0; i < n; i++ {
		r.grid.Step()
	}
}

// View renders the whole grid.
func (r *RainView) View() string {
	if r == nil {
		return ""
	}
	rows := make([]string, r.grid.Rows())
	for y := range rows {
		rows[y] = r.RenderRow(y, 0, r.grid.Width())
	}
	return strings.Join(rows, "\n")
}

// RenderRow renders terminal cells [from, to) of a row. Glyphs that would be
// cut by either edge are drawn as blanks.
func (r *RainView) RenderRow(row, from, to int) string {
	if to <= from {
		return ""
	}
	if r == nil {
		return strings.Repeat(" ", to-from)
	}

	var sb strings.Builder
	var run strings.Builder
	runShade := len(styles.RainShades)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style, ok := r.theme.RainShade(runShade); ok {
			sb.WriteString(style.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	for c := from; c < to; {
		col := c / rain.ColumnWidth
		cell := r.grid.At(row, col)
		if cell.Empty() || c%rain.ColumnWidth != 0 || c+rain.ColumnWidth > to {
			if runShade != len(styles.RainShades) {
				flush()
				runShade = len(styles.RainShades)
			}
			run.WriteByte(' ')
			c++
			continue
		}

		shade := styles.RainShadeIndex(r.grid.Brightness(cell))
		if shade != runShade {
			flush()
			runShade = shade
		}
		if shade >= len(styles.RainShades) {
			run.WriteString(strings.Repeat(" ", rain.ColumnWidth))
		} else {
			run.WriteString(cell.String())
		}
		c += rain.ColumnWidth
	}
	flush()
	return sb.String()
}

// =============================================================================
// COMPOSITION
// =============================================================================

// Compose centres fg on a width x height screen and fills the margins with
// rain. With a nil receiver the margins are blank.
func (r *RainView) Compose(fg string, width, height int) string {
	fgLines := strings.Split(fg, "\n")
	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, lipgloss.Width(l))
	}
	fgHeight := len(fgLines)

	x0 := max((width-fgWidth)/2, 0)
	y0 := max((height-fgHeight)/2, 0)

	rows := make([]string, 0, max(height, fgHeight))
	for y := 0; y < max(height, fgHeight); y++ {
		if y < y0 || y >= y0+fgHeight {
			rows = append(rows, r.RenderRow(y, 0, width))
			continue
		}
		line := fgLines[y-y0]
		if pad := fgWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, r.RenderRow(y, 0, x0)+line+r.RenderRow(y, x0+fgWidth, width))
	}
	return strings.Join(rows, "\n")
}

// Centre returns the top-left corner Compose uses for a w x h foreground.
func Centre(screenW, screenH, w, h int) (x, y int) {
	return max((screenW-w)/2, 0), max((screenH-h)/2, 0)
}
