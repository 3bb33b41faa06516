// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode/utf8"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is a single candidate trigger.
type Completion struct {
	Value       string
	Description string
}

// Completer offers tab completion over the visible triggers of a registry.
// Easter eggs are never suggested.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer for the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns every visible trigger starting with the (case-insensitive,
// left-trimmed) input, in sorted order.
func (c *Completer) Complete(input string) []Completion {
	if c.registry == nil {
		return nil
	}
	partial := strings.ToLower(strings.TrimLeft(input, " \t"))

	var out []Completion
	for _, trigger := range c.registry.Triggers() {
		if !strings.HasPrefix(trigger, partial) {
			continue
		}
		out = append(out, Completion{
			Value:       trigger,
			Description: c.describe(trigger),
		})
	}
	return out
}

// Values is Complete without descriptions, in the shape liner expects.
func (c *Completer) Values(input string) []string {
	completions := c.Complete(input)
	out := make([]string, len(completions))
	for i, comp := range completions {
		out[i] = comp.Value
	}
	return out
}

// Extend returns the input extended to the longest prefix shared by all
// candidates. It returns the input unchanged when nothing matches.
func (c *Completer) Extend(input string) string {
	values := c.Values(input)
	if len(values) == 0 {
		return input
	}
	prefix := CommonPrefix(values)
	if len(prefix) <= len(strings.TrimLeft(input, " \t")) {
		return input
	}
	return prefix
}

func (c *Completer) describe(trigger string) string {
	cmd := c.registry.Lookup(trigger)
	if cmd == nil {
		return ""
	}
	for _, h := range cmd.Help {
		if h.Usage == trigger {
			return h.Description
		}
	}
	if len(cmd.Help) > 0 {
		return cmd.Help[0].Description
	}
	return ""
}

// CommonPrefix returns the longest prefix shared by every value. It never
// splits a multi-byte rune.
func CommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	return prefix
}

// =============================================================================
// COMPLETION NAVIGATION
// =============================================================================

// CompletionState cycles through candidates on repeated Tab presses.
type CompletionState struct {
	// OriginalInput is the text the candidates were computed for.
	OriginalInput string
	Completions   []Completion

	// Selected index (-1 for none)
	Selected int
}

// NewCompletionState creates an empty completion state.
func NewCompletionState() *CompletionState {
	return &CompletionState{Selected: -1}
}

// Update replaces the candidates.
func (cs *CompletionState) Update(input string, completions []Completion) {
	cs.OriginalInput = input
	cs.Completions = completions
	cs.Selected = -1
}

// Active reports whether there are candidates to cycle.
func (cs *CompletionState) Active() bool { return len(cs.Completions) > 0 }

// Next selects the next candidate and returns its value.
func (cs *CompletionState) Next() string {
	if len(cs.Completions) == 0 {
		return cs.OriginalInput
	}
	cs.Selected = (cs.Selected + 1) % len(cs.Completions)
	return cs.Completions[cs.Selected].Value
}

// Clear drops the candidates.
func (cs *CompletionState) Clear() {
	cs.OriginalInput = ""
	cs.Completions = nil
	cs.Selected = -1
}
