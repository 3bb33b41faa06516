// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
)

// =============================================================================
// SKILL BARS
// =============================================================================

// Skill bar cells for plain output.
const (
	SkillBarFilled = '#'
	SkillBarEmpty  = '-'
)

// SkillBar draws level (0-100) as width cells, rounding to the nearest cell:
//
//	SkillBar(10, 70) // "#######---"
func SkillBar(width, level int) string {
	if width <= 0 {
		return ""
	}
	level = min(max(level, 0), 100)
	filled := (width*level + 50) / 100

	return strings.Repeat(string(SkillBarFilled), filled) +
		strings.Repeat(string(SkillBarEmpty), width-filled)
}

// =============================================================================
// RAIN SHADING
// =============================================================================

// RainShadeIndex maps a glyph brightness (1 = head, 0 = gone) to an index in
// RainShades. It returns -1 for brightness 1, meaning the RainHead colour,
// and len(RainShades) for anything too faint to draw.
func RainShadeIndex(brightness float64) int {
	switch {
	case brightness >= 1:
		return -1
	case brightness <= 0:
		return len(RainShades)
	}
	idx := int((1 - brightness) * float64(len(RainShades)))
	if idx >= len(RainShades) {
		idx = len(RainShades) - 1
	}
	return idx
}
