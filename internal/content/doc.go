// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the static portfolio tables that the command handlers
// print: profile facts, about text, skills, projects, commit history and the
// whoami aliases.
//
// The default profile is embedded in the binary (profile.toml). A custom
// profile with the same shape can be loaded from disk at startup; once loaded
// a Profile is treated as immutable.
//
//	p, err := content.Load(cfg.Content.ProfilePath)
//	if err != nil {
//	    return err
//	}
//	for _, s := range p.Skills {
//	    fmt.Printf("%s %d%%\n", s.Name, s.Level)
//	}
package content
