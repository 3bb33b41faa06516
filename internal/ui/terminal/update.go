// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/anim"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/output"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

const wheelLines = 3

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case typewriterTickMsg:
		return m.handleTypewriter(msg)

	case deferredMsg:
		var cmds []tea.Cmd
		for _, b := range msg.Blocks {
			cmds = append(cmds, m.appendBlock(b))
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case anim.FrameMsg:
		return m.handleFrame(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(m.width, m.height)

	if m.rain != nil {
		m.rain.Resize(m.width, m.height)
	}
	if m.modal != nil {
		m.modal.SetSize(m.width, m.height)
	}

	m.layout()
	m.refresh()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.modal != nil {
		if key.Matches(msg, m.keys.CloseModal) {
			m.closeModal()
		}
		return m, nil
	}

	if cmd, ok := m.quick.Match(msg.String()); ok {
		m.input.SetValue(cmd)
		return m.submit(cmd)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		m.completion.Clear()
		m.historyPrev()
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.completion.Clear()
		m.historyNext()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	m.completion.Clear()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		if msg.Type == tea.MouseLeft && !m.modal.Contains(msg.X, msg.Y) {
			m.closeModal()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.MouseWheelUp:
		m.viewport.LineUp(wheelLines)
	case tea.MouseWheelDown:
		m.viewport.LineDown(wheelLines)
	}
	return m, nil
}

func (m Model) handleTypewriter(msg typewriterTickMsg) (tea.Model, tea.Cmd) {
	e, ok := m.log.Reveal(msg.EntryID, 1)
	if !ok {
		return m, nil
	}
	m.refresh()
	if e.Done() {
		return m, nil
	}
	return m, typewriterTick(e.ID, m.cfg.Effects.TypewriterDelay())
}

func (m Model) handleFrame(msg anim.FrameMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		if next, ok := m.modal.Update(msg); ok {
			return m, next
		}
	}
	if m.rain != nil {
		if next, ok := m.rain.Update(msg); ok {
			return m, next
		}
	}
	return m, nil
}

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		m.status = "config reload failed: " + msg.Err.Error()
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	cmd := m.applyConfig(msg.Config)
	m.logger.Info("config reloaded",
		zap.String("theme", msg.Config.UI.Theme),
		zap.Bool("background_rain", msg.Config.Effects.BackgroundRain),
	)
	m.status = "config reloaded"
	return m, cmd
}

// applyConfig switches to cfg. The profile is fixed at startup and is not
// reloaded.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	old := m.cfg
	m.cfg = cfg

	if cfg.UI.Theme != old.UI.Theme {
		m.theme = styles.NewTheme(cfg.UI.Theme)
		m.theme.SetSize(m.width, m.height)
		m.buildDecorations()
	}

	m.router.SetPingInterval(cfg.Effects.PingInterval())
	m.input.Prompt = cfg.Prompt.String() + " "

	var cmd tea.Cmd
	switch {
	case !cfg.Effects.BackgroundRain && m.rain != nil:
		m.rain.Stop()
		m.rain = nil
	case cfg.Effects.BackgroundRain && m.rain == nil:
		m.rain = components.NewRainView(m.theme, m.width, m.height, cfg.Effects.RainFrame(), m.gridOptions()...)
		cmd = m.rain.Start()
	case m.rain != nil:
		m.rain.SetFrame(cfg.Effects.RainFrame())
	}

	m.layout()
	m.refresh()
	return cmd
}

// =============================================================================
// SUBMISSION
// =============================================================================

// submit runs raw through the router and renders the result.
func (m Model) submit(raw string) (tea.Model, tea.Cmd) {
	res, ok := m.router.Dispatch(raw)
	if !ok {
		return m, nil
	}

	m.input.SetValue("")
	m.completion.Clear()
	m.status = ""
	m.pushHistory(res.Input)

	cmds := []tea.Cmd{m.appendBlock(commands.EchoLine(m.cfg.Prompt.String(), res.Input))}
	if res.Clear {
		m.log.Clear()
	}
	for _, b := range res.Output {
		cmds = append(cmds, m.appendBlock(b))
	}
	for _, d := range res.Deferred {
		cmds = append(cmds, deferOutput(d))
	}
	if res.Modal != nil {
		cmds = append(cmds, m.openModal(*res.Modal))
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// appendBlock adds b to the log and starts its typewriter when enabled.
func (m *Model) appendBlock(b output.Block) tea.Cmd {
	e := m.log.Append(b, m.cfg.Effects.Typewriter)
	if e.Done() {
		return nil
	}
	return typewriterTick(e.ID, m.cfg.Effects.TypewriterDelay())
}

// =============================================================================
// MODAL
// =============================================================================

func (m *Model) openModal(spec commands.Modal) tea.Cmd {
	if m.modal != nil {
		m.closeModal()
	}
	m.modal = components.NewModal(m.theme, spec, m.cfg.Effects.RainFrame(), m.cfg.Effects.RainResetChance, m.rainOpts...)
	m.modal.SetSize(m.width, m.height)
	m.logger.Info("modal opened", zap.String("title", spec.Title))
	return m.modal.Start()
}

func (m *Model) closeModal() {
	if m.modal == nil {
		return
	}
	m.modal.Close()
	m.logger.Info("modal closed", zap.String("title", m.modal.Title()))
	m.modal = nil
}

// =============================================================================
// COMPLETION AND HISTORY
// =============================================================================

// complete handles Tab: a unique match is filled in, several matches are
// first extended to their common prefix and then cycled.
func (m *Model) complete() {
	if m.completion.Active() {
		m.setInput(m.completion.Next())
		return
	}

	value := m.input.Value()
	comps := m.completer.Complete(value)
	switch len(comps) {
	case 0:
		return
	case 1:
		m.setInput(comps[0].Value)
		return
	}

	if ext := m.completer.Extend(value); ext != value {
		m.setInput(ext)
		return
	}
	m.completion.Update(value, comps)
	m.setInput(m.completion.Next())
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m *Model) pushHistory(input string) {
	if n := len(m.history); n == 0 || m.history[n-1] != input {
		m.history = append(m.history, input)
	}
	m.historyPos = len(m.history)
	m.draft = ""
}

func (m *Model) historyPrev() {
	if m.historyPos == 0 {
		return
	}
	if m.historyPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.historyPos--
	m.setInput(m.history[m.historyPos])
}

func (m *Model) historyNext() {
	if m.historyPos >= len(m.history) {
		return
	}
	m.historyPos++
	if m.historyPos == len(m.history) {
		m.setInput(m.draft)
		return
	}
	m.setInput(m.history[m.historyPos])
}
