// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler produces the output for a command. Handlers are pure functions of
// the Context; they must not block or fail.
type Handler func(ctx *Context) Result

// HelpLine is one row of the help listing.
type HelpLine struct {
	Usage       string // e.g. "ls projects/" or "exit, quit"
	Description string

	// After places the row directly below the row with this usage instead of
	// in registration order.
	After string
}

// Command is a set of triggers bound to one handler.
type Command struct {
	// Name identifies the command in logs and tests.
	Name string

	// Triggers are the exact, lower-case inputs that select this command.
	Triggers []string

	// Help rows shown by "help". A command without help rows is hidden
	// from the listing and from completion.
	Help []HelpLine

	Handler Handler
}

// Hidden reports whether the command is left out of help and completion.
func (c *Command) Hidden() bool { return len(c.Help) == 0 }

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds the trigger table in registration order.
type Registry struct {
	commands []*Command
	triggers map[string]*Command
}

// NewRegistry creates a registry with all built-in commands.
func NewRegistry() *Registry {
	r := newEmptyRegistry()
	r.registerBuiltins()
	return r
}

func newEmptyRegistry() *Registry {
	return &Registry{triggers: make(map[string]*Command)}
}

// Register adds a command. Triggers must be non-empty, lower-case, trimmed
// and unique across the registry.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.Handler == nil {
		return fmt.Errorf("register %q: handler is nil", nameOf(cmd))
	}
	if len(cmd.Triggers) == 0 {
		return fmt.Errorf("register %q: no triggers", cmd.Name)
	}
	for _, t := range cmd.Triggers {
		if t == "" || t != strings.TrimSpace(t) || t != strings.ToLower(t) {
			return fmt.Errorf("register %q: trigger %q must be trimmed lower-case", cmd.Name, t)
		}
		if other, ok := r.triggers[t]; ok {
			return fmt.Errorf("register %q: trigger %q already bound to %q", cmd.Name, t, other.Name)
		}
	}

	r.commands = append(r.commands, cmd)
	for _, t := range cmd.Triggers {
		r.triggers[t] = cmd
	}
	return nil
}

// mustRegister is Register for the built-in table, where a failure is a
// programming error.
func (r *Registry) mustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Lookup returns the command bound to an already-normalised trigger.
func (r *Registry) Lookup(trigger string) *Command {
	return r.triggers[trigger]
}

// All returns every command in registration order.
func (r *Registry) All() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Triggers returns the triggers of visible commands, sorted.
func (r *Registry) Triggers() []string {
	var out []string
	for _, cmd := range r.commands {
		if cmd.Hidden() {
			continue
		}
		out = append(out, cmd.Triggers...)
	}
	sort.Strings(out)
	return out
}

// HelpLines returns the formatted help rows in registration order, with
// "{name}" in descriptions replaced by owner. Rows naming an After usage that
// exists follow that row; otherwise they keep their place.
func (r *Registry) HelpLines(owner string) []string {
	var rows []HelpLine
	for _, cmd := range r.commands {
		rows = append(rows, cmd.Help...)
	}
	rows = orderHelp(rows)

	lines := make([]string, len(rows))
	for i, h := range rows {
		desc := strings.ReplaceAll(h.Description, "{name}", owner)
		lines[i] = fmt.Sprintf("  %-12s - %s", h.Usage, desc)
	}
	return lines
}

func orderHelp(rows []HelpLine) []HelpLine {
	usages := make(map[string]bool, len(rows))
	for _, h := range rows {
		usages[h.Usage] = true
	}

	var placed, moved []HelpLine
	for _, h := range rows {
		if h.After != "" && h.After != h.Usage && usages[h.After] {
			moved = append(moved, h)
			continue
		}
		placed = append(placed, h)
	}

	out := make([]HelpLine, 0, len(rows))
	for _, h := range placed {
		out = append(out, h)
		out = appendFollowers(out, h.Usage, moved)
	}

	// rows in an After cycle never follow a placed row
	if len(out) < len(rows) {
		seen := make(map[string]bool, len(out))
		for _, h := range out {
			seen[h.Usage] = true
		}
		for _, h := range moved {
			if !seen[h.Usage] {
				out = append(out, h)
			}
		}
	}
	return out
}

// appendFollowers appends every moved row that follows usage, then the rows
// that follow those.
func appendFollowers(out []HelpLine, usage string, moved []HelpLine) []HelpLine {
	for _, m := range moved {
		if m.After == usage {
			out = append(out, m)
			out = appendFollowers(out, m.Usage, moved)
		}
	}
	return out
}

func nameOf(cmd *Command) string {
	if cmd == nil {
		return "<nil>"
	}
	return cmd.Name
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.mustRegister(&Command{
		Name:     "help",
		Triggers: []string{"help"},
		Help:     []HelpLine{{Usage: "help", Description: "Show this help message"}},
		Handler:  handleHelp,
	})

	r.mustRegister(&Command{
		Name:     "about",
		Triggers: []string{"about"},
		Help:     []HelpLine{{Usage: "about", Description: "About {name}"}},
		Handler:  handleAbout,
	})

	r.mustRegister(&Command{
		Name:     "projects",
		Triggers: []string{"projects", "ls projects/"},
		Help: []HelpLine{
			{Usage: "projects", Description: "View projects"},
			{Usage: "ls projects/", Description: "List projects", After: "./run --profile"},
		},
		Handler: handleProjects,
	})

	r.mustRegister(&Command{
		Name:     "skills",
		Triggers: []string{"skills", "cat skills.txt"},
		Help:     []HelpLine{{Usage: "skills", Description: "View skills"}},
		Handler:  handleSkills,
	})

	r.mustRegister(&Command{
		Name:     "profile",
		Triggers: []string{"./run --profile"},
		Help:     []HelpLine{{Usage: "./run --profile", Description: "Show profile information"}},
		Handler:  handleProfile,
	})

	r.mustRegister(&Command{
		Name:     "git-log",
		Triggers: []string{"git log --oneline"},
		Help:     []HelpLine{{Usage: "git log --oneline", Description: "Show commit history"}},
		Handler:  handleGitLog,
	})

	r.mustRegister(&Command{
		Name:     "clear",
		Triggers: []string{"clear"},
		Help:     []HelpLine{{Usage: "clear", Description: "Clear terminal"}},
		Handler:  handleClear,
	})

	r.mustRegister(&Command{
		Name:     "whoami",
		Triggers: []string{"whoami"},
		Help:     []HelpLine{{Usage: "whoami", Description: "Who are you?"}},
		Handler:  handleWhoami,
	})

	r.mustRegister(&Command{
		Name:     "ping",
		Triggers: []string{"ping google.com"},
		Help:     []HelpLine{{Usage: "ping google.com", Description: "Test network connection"}},
		Handler:  handlePing,
	})

	r.mustRegister(&Command{
		Name:     "exit",
		Triggers: []string{"exit", "quit"},
		Help:     []HelpLine{{Usage: "exit, quit", Description: "Exit terminal (or try to)"}},
		Handler:  handleExit,
	})

	// Easter eggs: no help rows.
	r.mustRegister(&Command{
		Name:     "sudo",
		Triggers: []string{"sudo rm -rf /"},
		Handler:  handleAccessDenied,
	})

	r.mustRegister(&Command{
		Name:     "matrix",
		Triggers: []string{"matrix"},
		Handler:  handleMatrix,
	})
}
