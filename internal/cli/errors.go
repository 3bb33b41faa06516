// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error reporting for termfolio commands.
//
// Commands always return errors; Execute prints them once and picks the exit
// code.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/content"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitConfigError indicates a configuration or profile error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "config")
	Action  string // Action being performed (e.g., "show")
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Command, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new command error.
func NewCommandError(command, action string, err error) error {
	return &CommandError{Command: command, Action: action, Err: err}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var verrs config.ValidateErrors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, config.ErrUnknownTheme),
		errors.Is(err, content.ErrInvalidProfile):
		return ExitConfigError
	}
	return ExitGeneralError
}

// DisplayError writes err as "Error: ..." to w.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), err.Error())
}
