// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rain

import (
	"math/rand/v2"

	"github.com/jeranaias/termfolio/internal/util"
)

const (
	// Charset is the glyph pool: katakana followed by digits.
	Charset = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン0123456789"

	// ColumnWidth is the number of terminal cells per rain column.
	ColumnWidth = 2

	// DefaultResetChance is the per-frame probability that a drop below the
	// bottom edge restarts at the top.
	DefaultResetChance = 0.025

	// DefaultFadeSteps is how many frames a painted cell stays visible.
	DefaultFadeSteps = 20
)

var glyphs = []rune(Charset)

// Cell is one grid position.
type Cell struct {
	Glyph rune

	// Age counts frames since the glyph was painted; 0 is a drop head.
	Age int
}

// Empty reports whether nothing is painted.
func (c Cell) Empty() bool { return c.Glyph == 0 }

// String renders the cell padded to ColumnWidth terminal cells.
func (c Cell) String() string {
	if c.Empty() {
		return util.PadWidth("", ColumnWidth)
	}
	return util.PadWidth(string(c.Glyph), ColumnWidth)
}

// =============================================================================
// GRID
// =============================================================================

// Grid is the rain state. It is not safe for concurrent use.
type Grid struct {
	cols, rows int

	// drops holds the 1-based row each column paints next.
	drops []int
	cells [][]Cell // [row][col]

	rng         *rand.Rand
	resetChance float64
	fadeSteps   int
}

// Option configures a Grid.
type Option func(*Grid)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Grid) { g.rng = rng }
}

// WithResetChance sets the restart probability, clamped to [0, 1].
func WithResetChance(p float64) Option {
	return func(g *Grid) {
		switch {
		case p < 0:
			p = 0
		case p > 1:
			p = 1
		}
		g.resetChance = p
	}
}

// WithFadeSteps sets how long a glyph stays visible.
func WithFadeSteps(n int) Option {
	return func(g *Grid) {
		if n > 0 {
			g.fadeSteps = n
		}
	}
}

// New creates a grid covering width x height terminal cells. Every drop
// starts at the top row.
func New(width, height int, opts ...Option) *Grid {
	g := &Grid{
		resetChance: DefaultResetChance,
		fadeSteps:   DefaultFadeSteps,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.Resize(width, height)
	return g
}

// Columns returns the number of rain columns.
func (g *Grid) Columns() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Width returns the width in terminal cells.
func (g *Grid) Width() int { return g.cols * ColumnWidth }

// FadeSteps returns the number of frames a glyph stays visible.
func (g *Grid) FadeSteps() int { return g.fadeSteps }

// Drops returns a copy of the drop positions.
func (g *Grid) Drops() []int {
	out := make([]int, len(g.drops))
	copy(out, g.drops)
	return out
}

// At returns the cell at row, col. Out of range positions are empty.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}
	}
	return g.cells[row][col]
}

// Brightness maps a cell's age to 1 (head) down to 0 (faded out).
func (g *Grid) Brightness(c Cell) float64 {
	if c.Empty() || c.Age >= g.fadeSteps {
		return 0
	}
	return 1 - float64(c.Age)/float64(g.fadeSteps)
}

// Resize changes the grid dimensions. Columns and rows that survive keep
// their drops and painted cells; new columns start at the top.
func (g *Grid) Resize(width, height int) {
	cols := max(width/ColumnWidth, 0)
	rows := max(height, 0)

	drops := make([]int, cols)
	for i := range drops {
		if i < len(g.drops) {
			drops[i] = g.drops[i]
		} else {
			drops[i] = 1
		}
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		if r < len(g.cells) {
			copy(cells[r], g.cells[r])
		}
	}

	g.cols, g.rows = cols, rows
	g.drops, g.cells = drops, cells
}

// Step advances the animation by one frame.
func (g *Grid) Step() {
	for r := range g.cells {
		row := g.cells[r]
		for c := range row {
			if row[c].Empty() {
				continue
			}
			row[c].Age++
			if row[c].Age >= g.fadeSteps {
				row[c] = Cell{}
			}
		}
	}

	for c := range g.drops {
		if head := g.drops[c] - 1; head >= 0 && head < g.rows {
			g.cells[head][c] = Cell{Glyph: glyphs[g.rng.IntN(len(glyphs))]}
		}
		if g.drops[c] > g.rows && g.rng.Float64() < g.resetChance {
			g.drops[c] = 0
		}
		g.drops[c]++
	}
}
