// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/termfolio/internal/content"
	"github.com/jeranaias/termfolio/internal/output"
)

// DefaultPingInterval is the gap between simulated ping replies.
const DefaultPingInterval = 500 * time.Millisecond

// =============================================================================
// RESULT
// =============================================================================

// ModalKind selects which overlay a command opens.
type ModalKind int

const (
	ModalAccessDenied ModalKind = iota + 1
	ModalMatrix
)

// Modal is an overlay opened by an easter egg.
type Modal struct {
	Kind  ModalKind
	Title string
	Body  []string

	// Code is shown highlighted under the body (the attempted command).
	Code string

	// Rain asks the renderer to run a rain animation inside the modal.
	Rain bool
}

// Deferred is output scheduled After the dispatch instant.
type Deferred struct {
	After  time.Duration
	Output []output.Block
}

// Result is everything a dispatch asks the renderer to do.
type Result struct {
	// Input is the trimmed input in its original case.
	Input string

	// Command is the matched command, nil when not found.
	Command *Command

	// Clear wipes the log before Output is appended.
	Clear bool

	Output   []output.Block
	Deferred []Deferred
	Modal    *Modal
}

// Found reports whether the input matched a trigger.
func (r Result) Found() bool { return r.Command != nil }

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Context gives handlers access to the static tables and dispatch settings.
type Context struct {
	Input        string
	Profile      *content.Profile
	Registry     *Registry
	PingInterval time.Duration

	rng *rand.Rand
}

// Intn returns a uniform int in [0, n).
func (c *Context) Intn(n int) int {
	return c.rng.IntN(n)
}

// =============================================================================
// ROUTER
// =============================================================================

// Router maps raw input to command results. It is used from a single
// goroutine; the case folder and random source are not synchronised.
type Router struct {
	registry     *Registry
	profile      *content.Profile
	pingInterval time.Duration
	rng          *rand.Rand
	lower        cases.Caser
	logger       *zap.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithProfile sets the content tables. Defaults to content.Default().
func WithProfile(p *content.Profile) Option {
	return func(r *Router) { r.profile = p }
}

// WithRegistry replaces the built-in registry.
func WithRegistry(reg *Registry) Option {
	return func(r *Router) { r.registry = reg }
}

// WithPingInterval sets the gap between simulated ping replies.
func WithPingInterval(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.pingInterval = d
		}
	}
}

// WithRand sets the random source used by whoami.
func WithRand(rng *rand.Rand) Option {
	return func(r *Router) { r.rng = rng }
}

// WithLogger sets the logger for dispatch events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRouter creates a router over the built-in registry.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		pingInterval: DefaultPingInterval,
		lower:        cases.Lower(language.Und),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = NewRegistry()
	}
	if r.profile == nil {
		r.profile = content.Default()
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

// Registry returns the trigger table.
func (r *Router) Registry() *Registry { return r.registry }

// Profile returns the content tables.
func (r *Router) Profile() *content.Profile { return r.profile }

// PingInterval returns the gap between simulated ping replies.
func (r *Router) PingInterval() time.Duration { return r.pingInterval }

// SetPingInterval changes the ping gap for later dispatches. Non-positive
// values are ignored.
func (r *Router) SetPingInterval(d time.Duration) {
	if d > 0 {
		r.pingInterval = d
	}
}

// Normalize turns raw input into a lookup key: trimmed and lower-cased.
func (r *Router) Normalize(raw string) string {
	return r.lower.String(strings.TrimSpace(raw))
}

// Dispatch runs the handler selected by raw. ok is false for empty or
// whitespace-only input, in which case nothing must be rendered.
func (r *Router) Dispatch(raw string) (res Result, ok bool) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Result{}, false
	}

	key := r.Normalize(input)
	cmd := r.registry.Lookup(key)
	if cmd == nil {
		r.logger.Debug("command not found", zap.String("input", input))
		return Result{
			Input:  input,
			Output: []output.Block{output.Text(NotFoundMessage(input))},
		}, true
	}

	ctx := &Context{
		Input:        input,
		Profile:      r.profile,
		Registry:     r.registry,
		PingInterval: r.pingInterval,
		rng:          r.rng,
	}
	res = cmd.Handler(ctx)
	res.Input = input
	res.Command = cmd

	r.logger.Debug("command dispatched",
		zap.String("command", cmd.Name),
		zap.String("trigger", key),
		zap.Int("output", len(res.Output)),
		zap.Int("deferred", len(res.Deferred)),
		zap.Bool("clear", res.Clear),
		zap.Bool("modal", res.Modal != nil),
	)
	return res, true
}

// NotFoundMessage is the line printed for unrecognised input.
func NotFoundMessage(input string) string {
	return "Command not found: " + input + ". Type 'help' for available commands."
}

// EchoLine is the prompt line printed before a command's output.
func EchoLine(prompt, input string) output.Line {
	return output.Styled(prompt+" "+input, output.StyleCommand)
}
