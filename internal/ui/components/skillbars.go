// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/jeranaias/termfolio/internal/output"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

const (
	minSkillBarWidth = 10
	maxSkillBarWidth = 40
)

// RenderSkillBars draws one proficiency bar per skill:
//
//	JavaScript ████████████████████████████░░ 95%
func RenderSkillBars(theme *styles.Theme, skills output.SkillList, width int) []string {
	nameWidth := 0
	for _, s := range skills {
		nameWidth = max(nameWidth, util.StringWidth(s.Name))
	}

	// name, space, bar, space, "100%"
	barWidth := width - nameWidth - 6
	barWidth = min(max(barWidth, minSkillBarWidth), maxSkillBarWidth)

	fill := styles.MatrixGreen.Light
	empty := styles.MatrixGreenDeep.Light
	if theme.IsDark {
		fill = styles.MatrixGreen.Dark
		empty = styles.MatrixGreenDeep.Dark
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
		progress.WithColorProfile(theme.ColorProfile),
	)
	bar.EmptyColor = empty

	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		var sb strings.Builder
		sb.WriteString(theme.SkillName.Render(util.PadWidth(s.Name, nameWidth)))
		sb.WriteString(" ")
		sb.WriteString(bar.ViewAs(float64(s.Level) / 100))
		sb.WriteString(" ")
		sb.WriteString(theme.SkillPercent.Render(output.Percent(s.Level)))
		lines = append(lines, sb.String())
	}
	return lines
}
