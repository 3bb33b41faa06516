// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command interpreter behind the terminal
// prompt.
//
// Input is matched against a declarative trigger table: the trimmed input is
// lower-cased and compared for exact equality. Several triggers may select
// one command ("skills" and "cat skills.txt"). The same table generates the
// help listing and tab completion, so there is one place to add a command.
//
// # Key Types
//
//   - Registry: the trigger table
//   - Command: triggers, help lines and a Handler
//   - Router: normalises input and dispatches to handlers
//   - Result: immediate output, deferred output, clear flag and modal
//   - Completer: trigger completion for Tab and line-mode editing
//
// # Usage
//
//	router := commands.NewRouter(commands.WithProfile(profile))
//	res, ok := router.Dispatch(input)
//	if !ok {
//	    return // empty input
//	}
//	if res.Clear {
//	    log.Clear()
//	}
//	for _, b := range res.Output {
//	    log.Append(b, true)
//	}
//
// Handlers never fail. Unknown input produces the not-found line.
package commands
