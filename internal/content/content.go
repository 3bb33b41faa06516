// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed profile.toml
var defaultProfileTOML string

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// =============================================================================
// TABLE TYPES
// =============================================================================

// Skill is a named proficiency shown as a percentage bar.
type Skill struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"` // 0-100
}

// Project is a portfolio entry.
type Project struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Commit is one line of the simulated git history.
type Commit struct {
	Hash    string `toml:"hash"`
	Message string `toml:"message"`
}

// Profile is the complete set of canned content for one portfolio owner.
type Profile struct {
	Name       string `toml:"name"`
	Role       string `toml:"role"`
	Location   string `toml:"location"`
	Experience string `toml:"experience"`
	Email      string `toml:"email"`
	GitHub     string `toml:"github"`
	LinkedIn   string `toml:"linkedin"`

	// Banner is the block-letter header. Empty means DefaultBanner.
	Banner string `toml:"banner"`

	About    []string  `toml:"about"`
	Aliases  []string  `toml:"aliases"`
	Skills   []Skill   `toml:"skills"`
	Projects []Project `toml:"projects"`
	Commits  []Commit  `toml:"commits"` // most recent first
}

// =============================================================================
// LOADING
// =============================================================================

var (
	defaultOnce    sync.Once
	defaultProfile *Profile
)

// Default returns a copy of the embedded profile.
func Default() *Profile {
	defaultOnce.Do(func() {
		p, err := Parse(defaultProfileTOML)
		if err != nil {
			panic(fmt.Sprintf("content: embedded profile: %v", err))
		}
		defaultProfile = p
	})
	return defaultProfile.Clone()
}

// Parse decodes a TOML profile. It does not fill missing sections; use Load
// for that.
func Parse(data string) (*Profile, error) {
	var p Profile
	if _, err := toml.Decode(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.Banner == "" {
		p.Banner = DefaultBanner
	}
	return &p, nil
}

// Load returns the embedded profile when path is empty, otherwise the profile
// at path with every undefined key taken from the embedded one.
func Load(path string) (*Profile, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var custom Profile
	md, err := toml.Decode(string(data), &custom)
	if err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", path, err)
	}

	merged := base.merge(&custom, md)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return merged, nil
}

// merge overlays every key defined in md from custom onto a copy of p.
func (p *Profile) merge(custom *Profile, md toml.MetaData) *Profile {
	out := p.Clone()

	str := map[string]struct {
		dst *string
		src string
	}{
		"name":       {&out.Name, custom.Name},
		"role":       {&out.Role, custom.Role},
		"location":   {&out.Location, custom.Location},
		"experience": {&out.Experience, custom.Experience},
		"email":      {&out.Email, custom.Email},
		"github":     {&out.GitHub, custom.GitHub},
		"linkedin":   {&out.LinkedIn, custom.LinkedIn},
		"banner":     {&out.Banner, custom.Banner},
	}
	for key, f := range str {
		if md.IsDefined(key) {
			*f.dst = f.src
		}
	}

	if md.IsDefined("about") {
		out.About = custom.About
	}
	if md.IsDefined("aliases") {
		out.Aliases = custom.Aliases
	}
	if md.IsDefined("skills") {
		out.Skills = custom.Skills
	}
	if md.IsDefined("projects") {
		out.Projects = custom.Projects
	}
	if md.IsDefined("commits") {
		out.Commits = custom.Commits
	}
	return out
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the invariants the command handlers rely on.
func (p *Profile) Validate() error {
	var problems []string

	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if len(p.Aliases) == 0 {
		problems = append(problems, "aliases must not be empty")
	}
	for i, s := range p.Skills {
		if s.Name == "" {
			problems = append(problems, fmt.Sprintf("skills[%d]: name is empty", i))
		}
		if s.Level < 0 || s.Level > 100 {
			problems = append(problems, fmt.Sprintf("skills[%d] %q: level %d outside 0-100", i, s.Name, s.Level))
		}
	}
	for i, c := range p.Commits {
		if c.Hash == "" {
			problems = append(problems, fmt.Sprintf("commits[%d]: hash is empty", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(problems, "; "))
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared tables.
func (p *Profile) Clone() *Profile {
	out := *p
	out.About = append([]string(nil), p.About...)
	out.Aliases = append([]string(nil), p.Aliases...)
	out.Skills = append([]Skill(nil), p.Skills...)
	out.Projects = append([]Project(nil), p.Projects...)
	out.Commits = append([]Commit(nil), p.Commits...)
	return &out
}
