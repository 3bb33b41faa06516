// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package output

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one block in the log together with its reveal progress.
type Entry struct {
	ID    string
	Block Block

	animated bool
	revealed int
	total    int
}

// Animated reports whether the entry was appended with a typewriter reveal.
func (e *Entry) Animated() bool { return e.animated }

// Done reports whether the entry is fully visible.
func (e *Entry) Done() bool { return !e.animated || e.revealed >= e.total }

// Visible returns the part of the block that is currently revealed.
func (e *Entry) Visible() Block {
	if e.Done() {
		return e.Block
	}
	line, ok := e.Block.(Line)
	if !ok {
		return e.Block
	}
	line.Text = util.RunePrefix(line.Text, e.revealed)
	return line
}

// =============================================================================
// LOG
// =============================================================================

// Log is the ordered, append-only terminal log. It is owned by a single
// goroutine (the UI update loop) and is not safe for concurrent use.
type Log struct {
	entries []*Entry
	index   map[string]*Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{index: make(map[string]*Entry)}
}

// Append adds a block to the end of the log. Only Line blocks can be
// animated; animate is ignored for structured blocks.
func (l *Log) Append(b Block, animate bool) *Entry {
	e := &Entry{
		ID:    uuid.NewString(),
		Block: b,
	}
	if line, ok := b.(Line); ok && animate {
		e.animated = true
		e.total = utf8.RuneCountInString(line.Text)
	}
	l.entries = append(l.entries, e)
	l.index[e.ID] = e
	return e
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.entries = nil
	l.index = make(map[string]*Entry)
}

// Reveal advances the entry's typewriter by n runes. ok is false when the
// entry is gone (cleared) so callers can drop their timer.
func (l *Log) Reveal(id string, n int) (e *Entry, ok bool) {
	e, ok = l.index[id]
	if !ok {
		return nil, false
	}
	if e.animated && e.revealed < e.total {
		e.revealed += n
		if e.revealed > e.total {
			e.revealed = e.total
		}
	}
	return e, true
}

// Get returns the entry with the given id, or nil.
func (l *Log) Get(id string) *Entry { return l.index[id] }

// Entries returns the entries in order. The slice is a copy; the entries are
// shared.
func (l *Log) Entries() []*Entry {
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int { return len(l.entries) }

// Pending returns the number of entries still being revealed.
func (l *Log) Pending() int {
	n := 0
	for _, e := range l.entries {
		if !e.Done() {
			n++
		}
	}
	return n
}

// Lines flattens the fully-revealed content of every entry.
func (l *Log) Lines() []Line {
	var lines []Line
	for _, e := range l.entries {
		lines = append(lines, e.Block.Lines()...)
	}
	return lines
}

// Texts is Lines without styling.
func (l *Log) Texts() []string {
	lines := l.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text
	}
	return out
}
