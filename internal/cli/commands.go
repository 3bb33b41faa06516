// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd dispatches a single input and prints the result
var runCmd = &cobra.Command{
	Use:   "run <input...>",
	Short: "Run one command and print its output",
	Long: `Run one command exactly as if it were typed at the prompt.

Output is printed without the typewriter effect. Delayed output such as ping
replies is printed on schedule; Ctrl+C stops waiting.`,
	Example: `  termfolio run skills
  termfolio run ping google.com
  termfolio run "git log --oneline"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, strings.Join(args, " "))
	},
}

// commandsCmd prints the help listing
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands available at the prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, "help")
	},
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "termfolio version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return nil
	},
}

// runOnce dispatches input and plays the result to the command's output.
func runOnce(cmd *cobra.Command, input string) error {
	a := current
	res, ok := a.router.Dispatch(input)
	if !ok {
		return nil
	}

	ctx, stop := interruptible(cmd.Context())
	defer stop()

	player := NewPlayer(cmd.OutOrStdout(), a.theme, GetTerminalWidth())
	err := player.Play(ctx, res)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
