// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/output"
)

// =============================================================================
// EFFECT MESSAGES
// =============================================================================

// typewriterTickMsg reveals the next character of a log entry.
type typewriterTickMsg struct {
	EntryID string
}

// deferredMsg carries output scheduled by a command.
type deferredMsg struct {
	Blocks []output.Block
}

// ConfigReloadedMsg is sent by the config watcher. Err is set when the file
// could not be loaded; the running configuration is kept in that case.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// =============================================================================
// COMMANDS
// =============================================================================

func typewriterTick(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return typewriterTickMsg{EntryID: id}
	})
}

func deferOutput(d commands.Deferred) tea.Cmd {
	blocks := d.Output
	return tea.Tick(d.After, func(time.Time) tea.Msg {
		return deferredMsg{Blocks: blocks}
	})
}
