// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for termfolio.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Print the effective configuration
//   get <key>           Print one value, e.g. effects.ping_interval_ms
//   path                Show which configuration file is used
//
// Flags:
//   --format toml|yaml  Output format for show

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/termfolio/internal/config"
)

var configFormat string

// configCmd groups the config subcommands; alone it behaves like show
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Example: `  termfolio config get ui.theme
  termfolio config get effects.typewriter_delay_ms`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.GetAllKeys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := current.cfg.Get(args[0])
		if err != nil {
			return NewCommandError("config", "get", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if current.cfgPath != "" {
			fmt.Fprintln(out, current.cfgPath)
			return nil
		}
		def, err := config.ConfigPathTOML()
		if err != nil {
			return NewCommandError("config", "path", err)
		}
		fmt.Fprintf(out, "%s %s\n", LabelStyle.Render("(not found, using defaults)"), ValueStyle.Render(def))
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configFormat, "format", "toml", "Output format: toml or yaml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
}

func showConfig(cmd *cobra.Command) error {
	if err := current.cfg.Encode(cmd.OutOrStdout(), strings.TrimSpace(configFormat)); err != nil {
		return NewCommandError("config", "show", err)
	}
	return nil
}
