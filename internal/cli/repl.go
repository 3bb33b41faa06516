// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/termfolio/internal/commands"
)

// LineReader is the part of liner.State the REPL uses.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// REPL is the plain line-mode terminal.
type REPL struct {
	reader    LineReader
	router    *commands.Router
	player    *Player
	prompt    string
	logger    *zap.Logger
	interrupt func(context.Context) (context.Context, context.CancelFunc)
}

// REPLOption configures a REPL.
type REPLOption func(*REPL)

// WithInterrupt sets how each command's playback context is derived. Ending
// that context stops the command and returns to the prompt.
func WithInterrupt(fn func(context.Context) (context.Context, context.CancelFunc)) REPLOption {
	return func(r *REPL) { r.interrupt = fn }
}

// NewREPL creates a REPL reading from reader.
func NewREPL(reader LineReader, router *commands.Router, player *Player, prompt string, logger *zap.Logger, opts ...REPLOption) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &REPL{
		reader:    reader,
		router:    router,
		player:    player,
		prompt:    prompt,
		logger:    logger,
		interrupt: context.WithCancel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// interruptible ends the returned context on Ctrl+C.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// Run reads commands until EOF (Ctrl+D) or ctx is cancelled. Ctrl+C at the
// prompt abandons the line; during output it stops the command. exit and
// quit never leave.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := r.reader.Prompt(r.prompt + " ")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		res, ok := r.router.Dispatch(line)
		if !ok {
			continue
		}
		r.reader.AppendHistory(res.Input)

		if err := r.play(ctx, res); err != nil {
			return err
		}
	}
}

// play runs one result. An interrupted command is not an error.
func (r *REPL) play(ctx context.Context, res commands.Result) error {
	playCtx, stop := r.interrupt(ctx)
	defer stop()

	err := r.player.Play(playCtx, res)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return nil
	case playCtx.Err() != nil:
		r.logger.Debug("command interrupted", zap.String("input", res.Input))
		fmt.Fprintln(r.player.out)
		return nil
	}
	return err
}

// runPlain starts the line-mode terminal on stdin/stdout.
func runPlain(ctx context.Context, a *app) error {
	state := liner.NewLiner()
	defer state.Close()

	state.SetCtrlCAborts(true)
	completer := commands.NewCompleter(a.router.Registry())
	state.SetCompleter(completer.Values)

	tty := IsStdoutTTY()
	opts := []PlayerOption{WithTTY(tty)}
	if tty && a.cfg.Effects.Typewriter {
		opts = append(opts, WithTypewriter(a.cfg.Effects.TypewriterDelay()))
	}
	player := NewPlayer(os.Stdout, a.theme, GetTerminalWidth(), opts...)

	a.logger.Info("plain mode started", zap.Bool("tty", tty))
	fmt.Println(a.theme.Banner.Render(bannerFor(a)))
	fmt.Println(a.theme.Hint.Render("Type 'help' for available commands. Ctrl+D exits."))

	return NewREPL(state, a.router, player, a.cfg.Prompt.String(), a.logger,
		WithInterrupt(interruptible)).Run(ctx)
}
