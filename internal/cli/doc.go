// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements the termfolio command line.

# Commands

	termfolio                  full-screen terminal (plain mode without a TTY)
	termfolio run <input...>   run one command and print its output
	termfolio commands         list the prompt commands
	termfolio config [show|get|path]
	termfolio version

# Global Flags

	--config PATH   config file (default ~/.termfolio/config.toml)
	--plain         line-mode terminal even on a TTY
	--no-rain       disable the background rain
	--theme NAME    auto, dark or light
	--log-file PATH write diagnostic logs
	-v, --verbose   debug logging

# Modes

The full-screen terminal runs as a Bubble Tea program next to a config file
watcher; edits to the config file are applied live. Plain mode is a liner
REPL that prints results as they arrive, exiting on Ctrl+D.
*/
package cli
