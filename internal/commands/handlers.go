// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"time"

	"github.com/jeranaias/termfolio/internal/output"
)

// Canned strings shared with tests and renderers.
const (
	ClearedMessage      = "Terminal cleared."
	AccessDeniedMessage = "Access Denied: Nice try!"
	ExitMessage         = "Cannot exit: You are trapped in the matrix..."
	WhoamiPrefix        = "You are: "

	// FallbackAlias answers whoami for a profile without aliases.
	FallbackAlias = "a ghost in the machine"

	// PingReplies is the number of simulated echo replies.
	PingReplies = 4
)

// =============================================================================
// INFORMATIONAL
// =============================================================================

func handleHelp(ctx *Context) Result {
	out := []output.Block{output.Styled("Available commands:", output.StyleHeading)}
	for _, line := range ctx.Registry.HelpLines(ctx.Profile.Name) {
		out = append(out, output.Text(line))
	}
	return Result{Output: out}
}

func handleAbout(ctx *Context) Result {
	out := []output.Block{output.Styled("About "+ctx.Profile.Name+":", output.StyleHeading)}
	for _, line := range ctx.Profile.About {
		out = append(out, output.Text(line))
	}
	return Result{Output: out}
}

func handleProjects(ctx *Context) Result {
	return Result{Output: []output.Block{
		output.Styled("Projects:", output.StyleHeading),
		output.ProjectList(ctx.Profile.Projects),
	}}
}

func handleSkills(ctx *Context) Result {
	return Result{Output: []output.Block{
		output.Styled("Skills:", output.StyleHeading),
		output.SkillList(ctx.Profile.Skills),
	}}
}

func handleProfile(ctx *Context) Result {
	p := ctx.Profile
	rows := []struct{ label, value string }{
		{"Name", p.Name},
		{"Role", p.Role},
		{"Location", p.Location},
		{"Experience", p.Experience},
		{"Email", p.Email},
		{"GitHub", p.GitHub},
		{"LinkedIn", p.LinkedIn},
	}

	out := []output.Block{output.Styled("Profile Information:", output.StyleHeading)}
	for _, row := range rows {
		out = append(out, output.Text(row.label+": "+row.value))
	}
	return Result{Output: out}
}

func handleGitLog(ctx *Context) Result {
	return Result{Output: []output.Block{
		output.Styled("Recent commits:", output.StyleHeading),
		output.CommitLog(ctx.Profile.Commits),
	}}
}

// =============================================================================
// SESSION
// =============================================================================

func handleClear(*Context) Result {
	return Result{
		Clear:  true,
		Output: []output.Block{output.Text(ClearedMessage)},
	}
}

func handleWhoami(ctx *Context) Result {
	alias := FallbackAlias
	if aliases := ctx.Profile.Aliases; len(aliases) > 0 {
		alias = aliases[ctx.Intn(len(aliases))]
	}
	return Result{Output: []output.Block{
		output.Styled(WhoamiPrefix+alias, output.StyleGlitch),
	}}
}

func handleExit(*Context) Result {
	return Result{Output: []output.Block{output.Text(ExitMessage)}}
}

// =============================================================================
// NETWORK
// =============================================================================

const (
	pingHost = "google.com"
	pingAddr = "142.250.190.78"
)

var pingTimes = [PingReplies]string{"14.252", "15.874", "13.981", "14.563"}

// handlePing prints the header now and schedules one reply per interval,
// then the statistics one interval after the last reply.
func handlePing(ctx *Context) Result {
	interval := ctx.PingInterval
	if interval <= 0 {
		interval = DefaultPingInterval
	}

	res := Result{Output: []output.Block{
		output.Styled(fmt.Sprintf("PING %s (%s): 56 data bytes", pingHost, pingAddr), output.StyleNetwork),
	}}

	for seq, ms := range pingTimes {
		res.Deferred = append(res.Deferred, Deferred{
			After: time.Duration(seq+1) * interval,
			Output: []output.Block{output.Line{
				Text:          fmt.Sprintf("64 bytes from %s: icmp_seq=%d ttl=57 time=%s ms", pingAddr, seq, ms),
				Style:         output.StyleNetwork,
				Emphasis:      ms,
				EmphasisStyle: output.StylePingTime,
			}},
		})
	}

	res.Deferred = append(res.Deferred, Deferred{
		After: time.Duration(PingReplies+1) * interval,
		Output: []output.Block{
			output.Styled(fmt.Sprintf("--- %s ping statistics ---", pingHost), output.StyleNetwork),
			output.Styled("4 packets transmitted, 4 packets received, 0.0% packet loss", output.StylePingSuccess),
			output.Styled("round-trip min/avg/max/stddev = 13.981/14.668/15.874/0.782 ms", output.StyleNetwork),
		},
	})
	return res
}

// =============================================================================
// EASTER EGGS
// =============================================================================

func handleAccessDenied(ctx *Context) Result {
	return Result{
		Output: []output.Block{output.Styled(AccessDeniedMessage, output.StyleAccessDenied)},
		Modal: &Modal{
			Kind:  ModalAccessDenied,
			Title: "ACCESS DENIED",
			Body: []string{
				"Unauthorized system destruction attempt detected!",
				"This incident has been reported to the cyber police.",
			},
			Code: ctx.Input,
		},
	}
}

func handleMatrix(*Context) Result {
	return Result{Modal: &Modal{
		Kind:  ModalMatrix,
		Title: "Welcome to the Matrix",
		Body: []string{
			"The Matrix has you...",
			"Follow the white rabbit.",
		},
		Rain: true,
	}}
}
