// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/output"
	"github.com/jeranaias/termfolio/internal/rain"
	"github.com/jeranaias/termfolio/internal/ui/components"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/util"
)

const (
	plainBarWidth   = 30
	plainRainFrames = 12
)

// =============================================================================
// PLAYER
// =============================================================================

// Player renders command results to a plain writer. Deferred output is
// written after its delay, blocking the caller.
type Player struct {
	out        io.Writer
	theme      *styles.Theme
	width      int
	prompt     string
	echo       bool
	tty        bool
	typewriter *Typewriter
	rainOpts   []rain.Option
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithEcho prints the prompt line before each result.
func WithEcho(prompt string) PlayerOption {
	return func(p *Player) {
		p.echo = true
		p.prompt = prompt
	}
}

// WithTypewriter reveals text lines one rune per delay.
func WithTypewriter(delay time.Duration) PlayerOption {
	return func(p *Player) { p.typewriter = NewTypewriter(delay) }
}

// WithTTY marks the output as a terminal, enabling screen clears and the
// restyled typewriter line.
func WithTTY(tty bool) PlayerOption {
	return func(p *Player) { p.tty = tty }
}

// WithPlayerRain passes options to the rain grid drawn in matrix modals.
func WithPlayerRain(opts ...rain.Option) PlayerOption {
	return func(p *Player) { p.rainOpts = append(p.rainOpts, opts...) }
}

// NewPlayer creates a player writing to out, wrapping at width.
func NewPlayer(out io.Writer, theme *styles.Theme, width int, opts ...PlayerOption) *Player {
	p := &Player{
		out:   out,
		theme: theme,
		width: max(width, MinTerminalWidth),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play writes res: the echo line, the immediate output, the modal, then
// each deferred batch once its delay has passed.
func (p *Player) Play(ctx context.Context, res commands.Result) error {
	start := time.Now()

	if p.echo {
		if err := p.writeBlock(ctx, commands.EchoLine(p.prompt, res.Input)); err != nil {
			return err
		}
	}
	if res.Clear && p.tty {
		termenv.NewOutput(p.out).ClearScreen()
	}
	for _, b := range res.Output {
		if err := p.writeBlock(ctx, b); err != nil {
			return err
		}
	}
	if res.Modal != nil {
		if err := p.writeModal(*res.Modal); err != nil {
			return err
		}
	}

	for _, d := range res.Deferred {
		if wait := d.After - time.Since(start); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		for _, b := range d.Output {
			if err := p.writeBlock(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeBlock renders one block. Lines go through the typewriter when one is
// configured; structured blocks are written at once.
func (p *Player) writeBlock(ctx context.Context, b output.Block) error {
	switch block := b.(type) {
	case output.Line:
		if p.typewriter != nil && block.Text != "" {
			if err := p.typewriter.Type(ctx, p.out, block.Text); err != nil {
				return err
			}
			if !p.tty {
				_, err := fmt.Fprintln(p.out)
				return err
			}
			// redraw the finished line with its style
			_, err := fmt.Fprint(p.out, "\r"+p.theme.RenderLine(block)+"\n")
			return err
		}
		return p.writeLines(components.RenderBlock(p.theme, block, p.width))

	case output.SkillList:
		return p.writeLines(SkillBars(block, p.width))

	default:
		return p.writeLines(components.RenderBlock(p.theme, b, p.width))
	}
}

func (p *Player) writeLines(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.out, l); err != nil {
			return err
		}
	}
	return nil
}

// writeModal prints the modal box once. Matrix modals show a still frame of
// rain.
func (p *Player) writeModal(spec commands.Modal) error {
	m := components.NewModal(p.theme, spec, 0, rain.DefaultResetChance, p.rainOpts...)
	m.SetSize(p.width, DefaultTerminalHeight)
	if r := m.Rain(); r != nil {
		r.Prime(plainRainFrames)
	}
	_, err := fmt.Fprintln(p.out, m.View())
	return err
}

// SkillBars renders skills as ASCII bars for plain output:
//
//	JavaScript [############################--] 95%
func SkillBars(skills output.SkillList, width int) []string {
	nameWidth := 0
	for _, s := range skills {
		nameWidth = max(nameWidth, util.StringWidth(s.Name))
	}
	barWidth := min(plainBarWidth, max(width-nameWidth-8, 10))

	lines := make([]string, len(skills))
	for i, s := range skills {
		lines[i] = strings.Join([]string{
			util.PadWidth(s.Name, nameWidth),
			"[" + styles.SkillBar(barWidth, s.Level) + "]",
			output.Percent(s.Level),
		}, " ")
	}
	return lines
}
