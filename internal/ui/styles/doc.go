// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the termfolio TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. NewTheme pins the background explicitly when the configured theme
is "dark" or "light".

# Color System (colors.go)

	MatrixGreen     - Prompt, terminal text, rain
	MatrixGreenDim  - Headings
	RainHead        - The leading glyph of a drop
	RainShades      - Fading trail, brightest first
	Cyan, Emerald, Amber, Rose, Purple - Output style tags

# Theme System (theme.go)

Each output style tag maps to a lipgloss style:

	theme := styles.NewTheme("auto")
	s := theme.RenderLine(output.Styled("Access Denied: Nice try!", output.StyleAccessDenied))

# Animation Helpers (animations.go)

	SkillBar          - ASCII skill bar for plain mode
	RainShadeIndex    - Brightness to shade mapping
*/
package styles
