// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/output"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	tests := []struct {
		mode     string
		wantMode string
		wantDark *bool
	}{
		{"dark", "dark", boolPtr(true)},
		{"LIGHT", "light", boolPtr(false)},
		{"auto", "auto", nil},
		{"", "auto", nil},
	}

	for _, tc := range tests {
		theme := NewTheme(tc.mode)
		if theme == nil {
			t.Fatalf("NewTheme(%q) returned nil", tc.mode)
		}
		if theme.Mode != tc.wantMode {
			t.Errorf("NewTheme(%q).Mode = %q, want %q", tc.mode, theme.Mode, tc.wantMode)
		}
		if tc.wantDark != nil && theme.IsDark != *tc.wantDark {
			t.Errorf("NewTheme(%q).IsDark = %v, want %v", tc.mode, theme.IsDark, *tc.wantDark)
		}
		if tc.wantDark != nil && lipgloss.HasDarkBackground() != *tc.wantDark {
			t.Errorf("NewTheme(%q) did not pin lipgloss background", tc.mode)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func TestThemeGlamourStyle(t *testing.T) {
	if got := NewTheme("dark").GlamourStyle(); got != "dark" {
		t.Errorf("dark theme glamour style = %q", got)
	}
	if got := NewTheme("light").GlamourStyle(); got != "light" {
		t.Errorf("light theme glamour style = %q", got)
	}
}

// =============================================================================
// LINE RENDERING TESTS
// =============================================================================

func TestThemeLineStyles(t *testing.T) {
	theme := NewTheme("dark")

	tags := []output.Style{
		output.StyleNone,
		output.StyleCommand,
		output.StyleHeading,
		output.StyleAccessDenied,
		output.StyleNetwork,
		output.StylePingSuccess,
		output.StylePingTime,
		output.StyleGlitch,
		output.StyleGitHash,
		output.StyleProjectTitle,
		output.Style("no-such-tag"),
	}
	for _, tag := range tags {
		rendered := theme.LineStyle(tag).Render("test")
		if !strings.Contains(rendered, "test") {
			t.Errorf("style %q lost its text: %q", tag, rendered)
		}
	}
}

func TestThemeRenderLine(t *testing.T) {
	theme := NewTheme("dark")

	tests := []struct {
		name string
		line output.Line
		want []string
	}{
		{"plain", output.Text("hello"), []string{"hello"}},
		{"empty", output.Text(""), nil},
		{
			"emphasis",
			output.Line{Text: "time=14.252 ms", Style: output.StyleNetwork, Emphasis: "14.252", EmphasisStyle: output.StylePingTime},
			[]string{"time=", "14.252", " ms"},
		},
		{
			"emphasis not yet revealed",
			output.Line{Text: "a1b", Emphasis: "a1b2c3d", EmphasisStyle: output.StyleGitHash},
			[]string{"a1b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := theme.RenderLine(tc.line)
			if len(tc.want) == 0 && got != "" {
				t.Errorf("RenderLine() = %q, want empty", got)
			}
			for _, part := range tc.want {
				if !strings.Contains(got, part) {
					t.Errorf("RenderLine() = %q, missing %q", got, part)
				}
			}
		})
	}
}

func TestThemeRainStyle(t *testing.T) {
	theme := NewTheme("dark")

	if _, ok := theme.RainStyle(1); !ok {
		t.Error("drop head should be drawable")
	}
	if _, ok := theme.RainStyle(0.4); !ok {
		t.Error("trail should be drawable")
	}
	if _, ok := theme.RainStyle(0); ok {
		t.Error("faded glyph should not be drawable")
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestThemeGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{250, LayoutWide},
	}

	theme := NewTheme("dark")
	for _, tc := range tests {
		theme.SetSize(tc.width, 40)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tc.width, got, tc.want)
		}
	}
}
