// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// MATRIX GREENS
// =============================================================================

// MatrixGreen - Terminal text, prompt and rain
var MatrixGreen = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#00FF41"}

// MatrixGreenDim - Secondary terminal text
var MatrixGreenDim = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#00B32C"}

// MatrixGreenDeep - Borders and faded rain
var MatrixGreenDeep = lipgloss.AdaptiveColor{Light: "#14532D", Dark: "#005F14"}

// RainHead - The leading glyph of a drop
var RainHead = lipgloss.AdaptiveColor{Light: "#052E16", Dark: "#D1FAE5"}

// RainShades fade a rain glyph from bright to almost gone.
var RainShades = []lipgloss.AdaptiveColor{
	{Light: "#15803D", Dark: "#00FF41"},
	{Light: "#16A34A", Dark: "#00CC34"},
	{Light: "#22C55E", Dark: "#009927"},
	{Light: "#4ADE80", Dark: "#00661A"},
	{Light: "#86EFAC", Dark: "#00330D"},
}

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Cyan - Network responses
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Ping success
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Amber - Round-trip times and commit hashes
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - Access denied
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Purple - Glitch text and project titles
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Terminal panel background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0D0208"}

// Overlay - Modal background
var Overlay = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#111111"}

// TextPrimary - Plain output lines
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#C8FACC"}

// TextMuted - Hints and key descriptions
var TextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6C7086"}
