// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/output"
	"github.com/jeranaias/termfolio/internal/rain"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
)

const (
	maxPanelWidth = 120
	inputLimit    = 256
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the portfolio terminal.
type Model struct {
	cfg     *config.Config
	profile *content.Profile
	theme   *styles.Theme
	logger  *zap.Logger
	keys    KeyMap

	// Command handling
	router     *commands.Router
	completer  *commands.Completer
	completion *commands.CompletionState

	// Output and input
	log        *output.Log
	input      textinput.Model
	viewport   viewport.Model
	history    []string
	historyPos int
	draft      string
	status     string

	// Decoration
	banner        *components.Banner
	bannerVisible bool
	quick         *components.QuickBar
	rain          *components.RainView
	rainOpts      []rain.Option
	modal         *components.Modal

	// Dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for UI events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTheme overrides the theme built from the config.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithRouter overrides the router built from the profile.
func WithRouter(r *commands.Router) Option {
	return func(m *Model) { m.router = r }
}

// WithRainOptions passes options to every rain grid the model creates.
func WithRainOptions(opts ...rain.Option) Option {
	return func(m *Model) { m.rainOpts = append(m.rainOpts, opts...) }
}

// New creates the terminal model. A nil cfg or profile selects the defaults.
func New(cfg *config.Config, profile *content.Profile, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if profile == nil {
		profile = content.Default()
	}

	m := Model{
		cfg:        cfg,
		profile:    profile,
		logger:     zap.NewNop(),
		keys:       DefaultKeyMap(),
		completion: commands.NewCompletionState(),
		log:        output.NewLog(),
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.theme == nil {
		m.theme = styles.NewTheme(cfg.UI.Theme)
	}
	if m.router == nil {
		m.router = commands.NewRouter(
			commands.WithProfile(profile),
			commands.WithPingInterval(cfg.Effects.PingInterval()),
			commands.WithLogger(m.logger),
		)
	}
	m.completer = commands.NewCompleter(m.router.Registry())

	ti := textinput.New()
	ti.Prompt = cfg.Prompt.String() + " "
	ti.CharLimit = inputLimit
	ti.Focus()
	m.input = ti

	m.viewport = viewport.New(80, 20)
	m.viewport.SetContent("")

	m.buildDecorations()
	if cfg.Effects.BackgroundRain {
		m.rain = components.NewRainView(m.theme, m.width, m.height, cfg.Effects.RainFrame(), m.gridOptions()...)
	}

	m.layout()
	return m
}

// buildDecorations (re)creates the theme-dependent components.
func (m *Model) buildDecorations() {
	art := m.profile.Banner
	if art == "" {
		art = content.DefaultBanner
	}
	m.banner = components.NewBanner(m.theme, art, strings.ToUpper(m.profile.Name))
	m.quick = components.NewQuickBar(m.theme)

	m.input.PromptStyle = m.theme.Prompt
	m.input.TextStyle = m.theme.InputText
	m.input.PlaceholderStyle = m.theme.Hint
	m.input.Cursor.Style = m.theme.Prompt

	if m.rain != nil {
		m.rain.SetTheme(m.theme)
	}
}

func (m *Model) gridOptions() []rain.Option {
	return append([]rain.Option{rain.WithResetChance(m.cfg.Effects.RainResetChance)}, m.rainOpts...)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the background rain.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.rain != nil {
		cmds = append(cmds, m.rain.Start())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// LAYOUT
// =============================================================================

func panelWidth(screen int) int {
	if screen <= 40 {
		return max(screen, 1)
	}
	return min(screen-4, maxPanelWidth)
}

func panelHeight(screen int) int {
	if screen <= 12 {
		return max(screen, 1)
	}
	return screen - 2
}

// innerWidth is the content width inside the panel border and padding.
func (m *Model) innerWidth() int {
	return max(panelWidth(m.width)-m.theme.Panel.GetHorizontalFrameSize(), 1)
}

// innerHeight is the content height inside the panel border.
func (m *Model) innerHeight() int {
	return max(panelHeight(m.height)-m.theme.Panel.GetVerticalFrameSize(), 1)
}

// layout sizes the viewport, input and decorations for the current screen.
func (m *Model) layout() {
	inner := m.innerWidth()

	m.banner.SetWidth(inner)
	m.quick.SetWidth(inner)
	m.input.Width = max(inner-lipgloss.Width(m.input.Prompt)-1, 1)

	// input line and status line
	footer := 2
	if m.cfg.UI.ShowQuickCommands(m.width) {
		footer += lipgloss.Height(m.quick.View())
	}

	header := 0
	m.bannerVisible = false
	if m.cfg.UI.ShowBanner {
		bh := m.banner.Height()
		if bh > 0 && m.innerHeight()-footer-bh-1 >= 3 {
			header = bh + 1
			m.bannerVisible = true
		}
	}

	m.viewport.Width = inner
	m.viewport.Height = max(m.innerHeight()-header-footer, 1)
}

// refresh re-renders the log into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(components.RenderLog(m.theme, m.log.Entries(), m.viewport.Width))
	m.viewport.GotoBottom()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Log returns the output log.
func (m Model) Log() *output.Log { return m.log }

// Input returns the current prompt text.
func (m Model) Input() string { return m.input.Value() }

// History returns the submitted inputs, oldest first.
func (m Model) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Modal returns the open modal, or nil.
func (m Model) Modal() *components.Modal { return m.modal }

// Rain returns the background rain, or nil when disabled.
func (m Model) Rain() *components.RainView { return m.rain }

// Config returns the active configuration.
func (m Model) Config() *config.Config { return m.cfg }

// Status returns the transient status message.
func (m Model) Status() string { return m.status }
