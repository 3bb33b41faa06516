// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Tables(t *testing.T) {
	p := Default()

	require.NoError(t, p.Validate())
	assert.Equal(t, "Akash Nanavati", p.Name)
	assert.Len(t, p.About, 5)
	assert.Len(t, p.Aliases, 8)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Commits, 7)
	require.Len(t, p.Skills, 8)

	assert.Equal(t, Skill{Name: "JavaScript", Level: 95}, p.Skills[0])
	assert.Equal(t, Skill{Name: "AWS", Level: 70}, p.Skills[7])
	assert.Equal(t, "a1b2c3d", p.Commits[0].Hash)
	assert.Equal(t, "Initial commit", p.Commits[6].Message)
	assert.Equal(t, DefaultBanner, p.Banner)
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Skills[0].Level = 1
	a.Aliases = nil

	b := Default()
	assert.Equal(t, 95, b.Skills[0].Level)
	assert.Len(t, b.Aliases, 8)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_MergesDefinedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.toml")
	data := `
name = "Ada Lovelace"
aliases = ["Enchantress"]

[[skills]]
name = "Analytical Engines"
level = 100
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, []string{"Enchantress"}, p.Aliases)
	assert.Equal(t, []Skill{{Name: "Analytical Engines", Level: 100}}, p.Skills)

	// untouched sections come from the embedded profile
	assert.Equal(t, "Full-Stack Developer", p.Role)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Commits, 7)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("name = "), 0600))
	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[[skills]]\nname = \"Go\"\nlevel = 140\n"), 0600))
	_, err = Load(invalid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidProfile))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{"default", func(p *Profile) {}, false},
		{"no name", func(p *Profile) { p.Name = "  " }, true},
		{"no aliases", func(p *Profile) { p.Aliases = nil }, true},
		{"negative level", func(p *Profile) { p.Skills[0].Level = -1 }, true},
		{"unnamed skill", func(p *Profile) { p.Skills[1].Name = "" }, true},
		{"commit without hash", func(p *Profile) { p.Commits[2].Hash = "" }, true},
		{"no skills is fine", func(p *Profile) { p.Skills = nil }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(p)
			err := p.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProfile)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
