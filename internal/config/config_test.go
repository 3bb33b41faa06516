// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the config directory at an empty temp dir and clears
// every override variable.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{
		"TERMFOLIO_THEME", "TERMFOLIO_TYPEWRITER_DELAY_MS", "TERMFOLIO_NO_RAIN",
		"TERMFOLIO_PROFILE", "TERMFOLIO_LOG_FILE", "TERMFOLIO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "user@akash:~$", cfg.Prompt.String())
	assert.Equal(t, 30*time.Millisecond, cfg.Effects.TypewriterDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.Effects.PingInterval())
	assert.Equal(t, 50*time.Millisecond, cfg.Effects.RainFrame())
	assert.True(t, cfg.Effects.Typewriter)
	assert.True(t, cfg.Effects.BackgroundRain)
	assert.Equal(t, ThemeAuto, cfg.UI.Theme)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolateHome(t)

	path, err := ResolvePath("")
	require.NoError(t, err)
	assert.Empty(t, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// =============================================================================
// FILE LOADING
// =============================================================================

func TestLoad_TOMLPartialOverride(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, ".termfolio", "config.toml"), `
[prompt]
user = "guest"

[effects]
typewriter_delay_ms = 10
background_rain = false

[ui]
theme = "Light"
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "guest@akash:~$", cfg.Prompt.String())
	assert.Equal(t, 10, cfg.Effects.TypewriterDelayMS)
	assert.False(t, cfg.Effects.BackgroundRain)
	assert.True(t, cfg.Effects.Typewriter, "unset keys keep defaults")
	assert.Equal(t, 500, cfg.Effects.PingIntervalMS)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
}

func TestLoad_YAML(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, ".termfolio", "config.yaml")
	writeFile(t, path, `
prompt:
  host: portfolio
effects:
  rain_reset_chance: 0.5
ui:
  quick_commands: always
`)

	resolved, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "user@portfolio:~$", cfg.Prompt.String())
	assert.Equal(t, 0.5, cfg.Effects.RainResetChance)
	assert.True(t, cfg.UI.ShowQuickCommands(300))
}

func TestLoad_TOMLWinsOverYAML(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, ".termfolio", "config.toml"), "[prompt]\nuser = \"toml\"\n")
	writeFile(t, filepath.Join(home, ".termfolio", "config.yaml"), "prompt:\n  user: yaml\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Prompt.User)
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, path, "log:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	syntax := filepath.Join(dir, "syntax.toml")
	writeFile(t, syntax, "[effects\n")
	_, err := LoadFromPath(syntax)
	assert.Error(t, err)

	theme := filepath.Join(dir, "theme.toml")
	writeFile(t, theme, "[ui]\ntheme = \"neon\"\n")
	_, err = LoadFromPath(theme)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTheme))

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "ui.theme", verrs[0].Field)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("TERMFOLIO_THEME", "dark")
	t.Setenv("TERMFOLIO_TYPEWRITER_DELAY_MS", "5")
	t.Setenv("TERMFOLIO_NO_RAIN", "true")
	t.Setenv("TERMFOLIO_PROFILE", "/tmp/me.toml")
	t.Setenv("TERMFOLIO_LOG_FILE", "/tmp/termfolio.log")
	t.Setenv("TERMFOLIO_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
	assert.Equal(t, 5, cfg.Effects.TypewriterDelayMS)
	assert.False(t, cfg.Effects.BackgroundRain)
	assert.Equal(t, "/tmp/me.toml", cfg.Content.ProfilePath)
	assert.Equal(t, "/tmp/termfolio.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	isolateHome(t)
	t.Setenv("TERMFOLIO_TYPEWRITER_DELAY_MS", "fast")
	t.Setenv("TERMFOLIO_NO_RAIN", "nope")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 30, cfg.Effects.TypewriterDelayMS)
	assert.True(t, cfg.Effects.BackgroundRain)
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"empty user", func(c *Config) { c.Prompt.User = " " }, "prompt.user"},
		{"empty host", func(c *Config) { c.Prompt.Host = "" }, "prompt.host"},
		{"zero typewriter delay", func(c *Config) { c.Effects.TypewriterDelayMS = 0 }, "effects.typewriter_delay_ms"},
		{"huge ping interval", func(c *Config) { c.Effects.PingIntervalMS = 60000 }, "effects.ping_interval_ms"},
		{"fast rain", func(c *Config) { c.Effects.RainFrameMS = 1 }, "effects.rain_frame_ms"},
		{"reset chance > 1", func(c *Config) { c.Effects.RainResetChance = 1.5 }, "effects.rain_reset_chance"},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
		{"bad quick mode", func(c *Config) { c.UI.QuickCommands = "sometimes" }, "ui.quick_commands"},
		{"negative compact width", func(c *Config) { c.UI.CompactWidth = -1 }, "ui.compact_width"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.True(t, strings.HasPrefix(err.Error(), tt.field+": "))
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Prompt.User = ""
	cfg.UI.Theme = "x"
	cfg.Log.Level = "x"

	var verrs ValidateErrors
	require.True(t, errors.As(cfg.Validate(), &verrs))
	assert.Len(t, verrs, 3)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"auto", ThemeAuto, false},
		{" DARK ", ThemeDark, false},
		{"Light", ThemeLight, false},
		{"", "", true},
		{"matrix", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownTheme) {
				t.Errorf("ParseTheme(%q) error = %v, want ErrUnknownTheme", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestShowQuickCommands(t *testing.T) {
	tests := []struct {
		mode  string
		width int
		want  bool
	}{
		{QuickAuto, 80, true},
		{QuickAuto, 100, true},
		{QuickAuto, 101, false},
		{QuickAlways, 200, true},
		{QuickNever, 40, false},
	}
	for _, tt := range tests {
		ui := Default().UI
		ui.QuickCommands = tt.mode
		if got := ui.ShowQuickCommands(tt.width); got != tt.want {
			t.Errorf("ShowQuickCommands(%s, %d) = %v, want %v", tt.mode, tt.width, got, tt.want)
		}
	}
}

// =============================================================================
// GET / ENCODE
// =============================================================================

func TestGet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("effects.typewriter_delay_ms")
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	v, err = cfg.Get("prompt.host")
	require.NoError(t, err)
	assert.Equal(t, "akash", v)

	_, err = cfg.Get("effects.nope")
	assert.Error(t, err)
	_, err = cfg.Get("prompt.user.x")
	assert.Error(t, err)
	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	assert.Contains(t, keys, "prompt.user")
	assert.Contains(t, keys, "effects.rain_reset_chance")
	assert.Contains(t, keys, "log.level")

	cfg := Default()
	for _, k := range keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	isolateHome(t)
	cfg := Default()
	cfg.Prompt.User = "neo"
	cfg.Effects.RainFrameMS = 80

	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, cfg.Encode(&buf, format))

			path := filepath.Join(t.TempDir(), "config."+format)
			writeFile(t, path, buf.String())

			loaded, err := LoadFromPath(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}

	assert.Error(t, cfg.Encode(&bytes.Buffer{}, "json"))
	assert.Contains(t, cfg.String(), "typewriter_delay_ms = 30")
}

// =============================================================================
// GLOBAL
// =============================================================================

func TestConfig_ConcurrentAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_SetGlobalBeforeFirstAccess(t *testing.T) {
	isolateHome(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Default()
	cfg.Prompt.User = "trinity"
	SetGlobal(cfg)
	assert.Equal(t, "trinity", Global().Prompt.User)
}
