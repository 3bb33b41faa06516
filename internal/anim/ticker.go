// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// =============================================================================
// HANDLE
// =============================================================================

// Handle controls a running animation.
type Handle interface {
	// ID identifies the animation's frames.
	ID() string

	// Stop ends the animation. Further frames are ignored. Safe to call
	// more than once.
	Stop()

	// Stopped reports whether Stop has been called.
	Stopped() bool
}

// FrameMsg is delivered once per frame to the owning model.
type FrameMsg struct {
	ID   string
	Time time.Time
}

// =============================================================================
// TICKER
// =============================================================================

// Ticker schedules FrameMsg at a fixed interval until stopped. It is owned by
// the Bubble Tea update loop and is not safe for concurrent use.
type Ticker struct {
	id       string
	interval time.Duration
	stopped  bool
	frames   int
}

// NewTicker creates a ticker with a fresh ID. A non-positive interval falls
// back to one frame every 50ms.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Ticker{
		id:       uuid.NewString(),
		interval: interval,
	}
}

// ID implements Handle.
func (t *Ticker) ID() string { return t.id }

// Stop implements Handle.
func (t *Ticker) Stop() { t.stopped = true }

// Stopped implements Handle.
func (t *Ticker) Stopped() bool { return t.stopped }

// Interval returns the frame interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// SetInterval changes the interval from the next scheduled frame on.
func (t *Ticker) SetInterval(d time.Duration) {
	if d > 0 {
		t.interval = d
	}
}

// Frames returns how many frames have been accepted.
func (t *Ticker) Frames() int { return t.frames }

// Start returns the command that delivers the first frame.
func (t *Ticker) Start() tea.Cmd {
	if t.stopped {
		return nil
	}
	return t.tick()
}

// Owns reports whether msg was produced by this ticker.
func (t *Ticker) Owns(msg FrameMsg) bool { return msg.ID == t.id }

// Accept consumes a frame. It returns ok=false when the frame belongs to
// another ticker or this ticker is stopped; otherwise the caller should draw
// the frame and return next to keep the animation going.
func (t *Ticker) Accept(msg FrameMsg) (next tea.Cmd, ok bool) {
	if !t.Owns(msg) || t.stopped {
		return nil, false
	}
	t.frames++
	return t.tick(), true
}

func (t *Ticker) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: now}
	})
}
