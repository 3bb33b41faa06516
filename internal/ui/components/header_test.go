// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/termfolio/internal/ui/styles"
)

// =============================================================================
// BANNER TESTS
// =============================================================================

const testArt = `
 _   _
| |_| |
|  _  |
|_| |_|
`

func TestNewBanner(t *testing.T) {
	theme := styles.NewTheme("dark")
	b := NewBanner(theme, testArt, "HELLO")

	if b == nil {
		t.Fatal("NewBanner() returned nil")
	}
	if strings.HasPrefix(b.Art, "\n") || strings.HasSuffix(b.Art, "\n") {
		t.Errorf("NewBanner() did not trim art: %q", b.Art)
	}
	if b.Width != 80 {
		t.Errorf("NewBanner() Width = %d, want 80", b.Width)
	}
}

func TestBanner_FitsAndFallback(t *testing.T) {
	theme := styles.NewTheme("dark")
	b := NewBanner(theme, testArt, "HELLO WORLD")

	tests := []struct {
		width      int
		wantFits   bool
		wantHeight int
	}{
		{80, true, 4},
		{7, true, 4},
		{6, false, 1},
		{3, false, 1},
	}

	for _, tc := range tests {
		b.SetWidth(tc.width)
		if got := b.Fits(); got != tc.wantFits {
			t.Errorf("width %d: Fits() = %v, want %v", tc.width, got, tc.wantFits)
		}
		if got := b.Height(); got != tc.wantHeight {
			t.Errorf("width %d: Height() = %d, want %d", tc.width, got, tc.wantHeight)
		}
		view := b.View()
		if got := lipgloss.Height(view); got != tc.wantHeight {
			t.Errorf("width %d: View() height = %d, want %d", tc.width, got, tc.wantHeight)
		}
		for _, line := range strings.Split(view, "\n") {
			if w := lipgloss.Width(line); w > tc.width {
				t.Errorf("width %d: line %q is %d wide", tc.width, line, w)
			}
		}
	}
}

func TestBanner_Empty(t *testing.T) {
	b := NewBanner(styles.NewTheme("dark"), "", "")
	if b.Height() != 0 || b.View() != "" {
		t.Errorf("empty banner rendered %q", b.View())
	}
}
