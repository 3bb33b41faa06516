// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for choosing between the TUI and plain
// mode.
//
// The TUI needs both stdin and stdout attached to a terminal. Piped input,
// redirected output and dumb terminals get the line-mode REPL instead.

package cli

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanRunTUI reports whether the full-screen interface can be used.
func CanRunTUI() bool {
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTTY() && IsStdoutTTY()
}

// =============================================================================
// TERMINAL SIZE
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback height when detection fails
	DefaultTerminalHeight = 24

	// MinTerminalWidth is the narrowest width plain output wraps to
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return max(width, MinTerminalWidth)
}

// GetTerminalSize returns both width and height of the terminal.
// Returns defaults (80x24) if size cannot be determined.
func GetTerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultTerminalWidth, DefaultTerminalHeight
	}
	return w, h
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// GetColorProfile returns the colour profile for stdout. NO_COLOR
// (https://no-color.org/) forces Ascii; CLICOLOR_FORCE enables colour when
// stdout is not a terminal.
func GetColorProfile() termenv.Profile {
	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}

// ColorsEnabled reports whether styled output should be written.
func ColorsEnabled() bool {
	return GetColorProfile() != termenv.Ascii
}
