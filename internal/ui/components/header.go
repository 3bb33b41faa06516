// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// BANNER COMPONENT
// =============================================================================

// Banner is the block-letter header above the terminal log.
type Banner struct {
	Art   string // multi-line ASCII art
	Title string // one-line fallback when the art does not fit
	Width int    // available width
	theme *styles.Theme
}

// NewBanner creates a banner. The art is trimmed of blank leading and
// trailing lines.
func NewBanner(theme *styles.Theme, art, title string) *Banner {
	return &Banner{
		Art:   strings.Trim(art, "\n"),
		Title: title,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the banner width.
func (b *Banner) SetWidth(width int) {
	b.Width = width
}

// Fits reports whether the full art fits the current width.
func (b *Banner) Fits() bool {
	return b.Art != "" && util.MaxLineWidth(b.Art) <= b.Width
}

// Height returns the number of lines View produces.
func (b *Banner) Height() int {
	if b.Fits() {
		return strings.Count(b.Art, "\n") + 1
	}
	if b.Title == "" {
		return 0
	}
	return 1
}

// View renders the art, or the title when the art is too wide.
func (b *Banner) View() string {
	if b.Fits() {
		return b.theme.Banner.Render(b.Art)
	}
	if b.Title == "" {
		return ""
	}
	return b.theme.Banner.Render(util.TruncateWidth(b.Title, b.Width))
}
