// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger for termfolio.
//
// The TUI owns the terminal, so logs only ever go to a file. With no file
// configured the logger is a no-op.
package logging
