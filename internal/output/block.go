// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"fmt"

	"github.com/jeranaias/termfolio/internal/content"
)

// =============================================================================
// STYLE TAGS
// =============================================================================

// Style is a presentation tag attached to a line. Renderers map tags to
// concrete colours; an unknown or empty tag renders as plain text.
type Style string

const (
	StyleNone         Style = ""
	StyleCommand      Style = "command"       // echoed prompt + input
	StyleAccessDenied Style = "access-denied" // sudo rm -rf /
	StyleNetwork      Style = "network-response"
	StylePingSuccess  Style = "ping-success"
	StylePingTime     Style = "ping-time" // emphasised round-trip value
	StyleGlitch       Style = "glitch"    // whoami
	StyleGitHash      Style = "git-hash"
	StyleProjectTitle Style = "project-title"
	StyleHeading      Style = "heading"
)

// =============================================================================
// BLOCKS
// =============================================================================

// Block is one rendered unit appended to the log.
type Block interface {
	// Lines flattens the block into plain styled lines.
	Lines() []Line
}

// Line is a single line of output.
type Line struct {
	Text  string
	Style Style

	// Emphasis, when non-empty, is a substring of Text rendered with
	// EmphasisStyle instead of Style.
	Emphasis      string
	EmphasisStyle Style
}

// Text is shorthand for an unstyled line.
func Text(s string) Line { return Line{Text: s} }

// Styled is shorthand for a line with a style tag.
func Styled(s string, style Style) Line { return Line{Text: s, Style: style} }

// Lines implements Block.
func (l Line) Lines() []Line { return []Line{l} }

// ProjectList renders each project as a title line and a description line.
type ProjectList []content.Project

// Lines implements Block.
func (p ProjectList) Lines() []Line {
	lines := make([]Line, 0, len(p)*2)
	for _, project := range p {
		lines = append(lines,
			Styled(project.Name, StyleProjectTitle),
			Text(project.Description),
		)
	}
	return lines
}

// SkillList renders proficiency bars. Flattened, each skill is one line
// ending in its percentage.
type SkillList []content.Skill

// Lines implements Block.
func (s SkillList) Lines() []Line {
	width := 0
	for _, skill := range s {
		if len(skill.Name) > width {
			width = len(skill.Name)
		}
	}
	lines := make([]Line, 0, len(s))
	for _, skill := range s {
		lines = append(lines, Text(fmt.Sprintf("%-*s %s", width, skill.Name, Percent(skill.Level))))
	}
	return lines
}

// Percent formats a skill level the way every renderer displays it.
func Percent(level int) string {
	return fmt.Sprintf("%d%%", level)
}

// CommitLog renders one line per commit with the hash emphasised.
type CommitLog []content.Commit

// Lines implements Block.
func (c CommitLog) Lines() []Line {
	lines := make([]Line, 0, len(c))
	for _, commit := range c {
		lines = append(lines, Line{
			Text:          commit.Hash + " " + commit.Message,
			Emphasis:      commit.Hash,
			EmphasisStyle: StyleGitHash,
		})
	}
	return lines
}
