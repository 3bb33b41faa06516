// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme is returned for a theme name other than auto, dark or light.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme names.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Quick-command bar modes.
const (
	QuickAuto   = "auto"
	QuickAlways = "always"
	QuickNever  = "never"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete termfolio configuration.
type Config struct {
	Prompt  PromptConfig  `toml:"prompt" yaml:"prompt"`
	Effects EffectsConfig `toml:"effects" yaml:"effects"`
	UI      UIConfig      `toml:"ui" yaml:"ui"`
	Content ContentConfig `toml:"content" yaml:"content"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// PromptConfig builds the echo prefix user@host:path$.
type PromptConfig struct {
	User string `toml:"user" yaml:"user"`
	Host string `toml:"host" yaml:"host"`
	Path string `toml:"path" yaml:"path"`
}

// String returns the prompt as printed before each echoed command.
func (p PromptConfig) String() string {
	return fmt.Sprintf("%s@%s:%s$", p.User, p.Host, p.Path)
}

// EffectsConfig contains animation timing.
type EffectsConfig struct {
	// Typewriter reveals text lines one character at a time
	Typewriter bool `toml:"typewriter" yaml:"typewriter"`
	// TypewriterDelayMS is the delay between revealed characters
	TypewriterDelayMS int `toml:"typewriter_delay_ms" yaml:"typewriter_delay_ms"`
	// PingIntervalMS is the gap between simulated ping replies
	PingIntervalMS int `toml:"ping_interval_ms" yaml:"ping_interval_ms"`
	// BackgroundRain draws the falling-character backdrop
	BackgroundRain bool `toml:"background_rain" yaml:"background_rain"`
	// RainFrameMS is the frame interval of both rain animations
	RainFrameMS int `toml:"rain_frame_ms" yaml:"rain_frame_ms"`
	// RainResetChance is the per-frame chance a finished drop restarts (0-1)
	RainResetChance float64 `toml:"rain_reset_chance" yaml:"rain_reset_chance"`
}

// TypewriterDelay returns the per-character delay.
func (e EffectsConfig) TypewriterDelay() time.Duration {
	return time.Duration(e.TypewriterDelayMS) * time.Millisecond
}

// PingInterval returns the gap between ping replies.
func (e EffectsConfig) PingInterval() time.Duration {
	return time.Duration(e.PingIntervalMS) * time.Millisecond
}

// RainFrame returns the rain frame interval.
func (e EffectsConfig) RainFrame() time.Duration {
	return time.Duration(e.RainFrameMS) * time.Millisecond
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "auto", "dark", "light"
	Theme string `toml:"theme" yaml:"theme"`
	// ShowBanner shows the block-letter header above the log
	ShowBanner bool `toml:"show_banner" yaml:"show_banner"`
	// QuickCommands controls the F1-F8 bar: "auto", "always", "never"
	QuickCommands string `toml:"quick_commands" yaml:"quick_commands"`
	// CompactWidth is the terminal width at or below which "auto" shows the bar
	CompactWidth int `toml:"compact_width" yaml:"compact_width"`
}

// ShowQuickCommands reports whether the quick-command bar is visible at the
// given terminal width.
func (u UIConfig) ShowQuickCommands(width int) bool {
	switch strings.ToLower(u.QuickCommands) {
	case QuickAlways:
		return true
	case QuickNever:
		return false
	default:
		return width <= u.CompactWidth
	}
}

// ContentConfig selects the portfolio content.
type ContentConfig struct {
	// ProfilePath is an optional TOML profile overriding the embedded one
	ProfilePath string `toml:"profile_path" yaml:"profile_path"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	// File is the log destination. Empty disables logging.
	File string `toml:"file" yaml:"file"`
	// Level is one of debug, info, warn, error
	Level string `toml:"level" yaml:"level"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Prompt: PromptConfig{
			User: "user",
			Host: "akash",
			Path: "~",
		},

		Effects: EffectsConfig{
			Typewriter:        true,
			TypewriterDelayMS: 30,
			PingIntervalMS:    500,
			BackgroundRain:    true,
			RainFrameMS:       50,
			RainResetChance:   0.025,
		},

		UI: UIConfig{
			Theme:         ThemeAuto,
			ShowBanner:    true,
			QuickCommands: QuickAuto,
			CompactWidth:  100,
		},

		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the termfolio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".termfolio"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathYAML returns the path to the YAML config file.
func ConfigPathYAML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ResolvePath returns the config file that Load would read. An explicit path
// always wins. It returns "" when no file exists and defaults apply.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, candidate := range []func() (string, error){ConfigPathTOML, ConfigPathYAML} {
		path, err := candidate()
		if err != nil {
			return "", err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return path, nil
		}
	}
	return "", nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from explicit, or from the first of
// ~/.termfolio/config.toml and ~/.termfolio/config.yaml that exists, or from
// defaults. Environment overrides are applied last.
func Load(explicit string) (*Config, error) {
	path, err := ResolvePath(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Files ending in .yaml or .yml are YAML; anything else is TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if isYAML(path) {
		if err := LoadYAML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load YAML config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file over cfg. Keys absent from the file keep
// their current values.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string

	// Err is an optional sentinel the failure matches with errors.Is.
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every field error to errors.Is and errors.As.
func (e ValidateErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, err := range e {
		out[i] = err
	}
	return out
}

// ParseTheme normalises a theme name.
func ParseTheme(name string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(name)); t {
	case ThemeAuto, ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("%w %q, must be one of: auto, dark, light", ErrUnknownTheme, name)
	}
}

// Validate validates the configuration and returns any errors as
// ValidateErrors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// ==========================================================================
	// Prompt
	// ==========================================================================

	if strings.TrimSpace(c.Prompt.User) == "" {
		errs = append(errs, ValidationError{Field: "prompt.user", Message: "must not be empty"})
	}
	if strings.TrimSpace(c.Prompt.Host) == "" {
		errs = append(errs, ValidationError{Field: "prompt.host", Message: "must not be empty"})
	}

	// ==========================================================================
	// Effects
	// ==========================================================================

	if c.Effects.TypewriterDelayMS < 1 || c.Effects.TypewriterDelayMS > 1000 {
		errs = append(errs, ValidationError{
			Field:   "effects.typewriter_delay_ms",
			Message: fmt.Sprintf("%d out of range, must be between 1 and 1000", c.Effects.TypewriterDelayMS),
		})
	}
	if c.Effects.PingIntervalMS < 1 || c.Effects.PingIntervalMS > 10000 {
		errs = append(errs, ValidationError{
			Field:   "effects.ping_interval_ms",
			Message: fmt.Sprintf("%d out of range, must be between 1 and 10000", c.Effects.PingIntervalMS),
		})
	}
	if c.Effects.RainFrameMS < 10 || c.Effects.RainFrameMS > 1000 {
		errs = append(errs, ValidationError{
			Field:   "effects.rain_frame_ms",
			Message: fmt.Sprintf("%d out of range, must be between 10 and 1000", c.Effects.RainFrameMS),
		})
	}
	if c.Effects.RainResetChance < 0 || c.Effects.RainResetChance > 1 {
		errs = append(errs, ValidationError{
			Field:   "effects.rain_reset_chance",
			Message: fmt.Sprintf("%g out of range, must be between 0.0 and 1.0", c.Effects.RainResetChance),
		})
	}

	// ==========================================================================
	// UI
	// ==========================================================================

	if _, err := ParseTheme(c.UI.Theme); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
			Err:     ErrUnknownTheme,
		})
	}
	validQuick := map[string]bool{QuickAuto: true, QuickAlways: true, QuickNever: true}
	if !validQuick[strings.ToLower(c.UI.QuickCommands)] {
		errs = append(errs, ValidationError{
			Field:   "ui.quick_commands",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.UI.QuickCommands),
		})
	}
	if c.UI.CompactWidth < 0 {
		errs = append(errs, ValidationError{Field: "ui.compact_width", Message: "must not be negative"})
	}

	// ==========================================================================
	// Log
	// ==========================================================================

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty string fields that have a default. Numeric fields
// are left alone so that Validate can report them.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Prompt.User == "" {
		c.Prompt.User = defaults.Prompt.User
	}
	if c.Prompt.Host == "" {
		c.Prompt.Host = defaults.Prompt.Host
	}
	if c.Prompt.Path == "" {
		c.Prompt.Path = defaults.Prompt.Path
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.QuickCommands == "" {
		c.UI.QuickCommands = defaults.UI.QuickCommands
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - TERMFOLIO_THEME: overrides ui.theme
//   - TERMFOLIO_TYPEWRITER_DELAY_MS: overrides effects.typewriter_delay_ms
//   - TERMFOLIO_NO_RAIN: "1" or "true" disables effects.background_rain
//   - TERMFOLIO_PROFILE: overrides content.profile_path
//   - TERMFOLIO_LOG_FILE: overrides log.file
//   - TERMFOLIO_LOG_LEVEL: overrides log.level
//
// Unparseable numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("TERMFOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if delay := os.Getenv("TERMFOLIO_TYPEWRITER_DELAY_MS"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil {
			c.Effects.TypewriterDelayMS = ms
		}
	}

	if noRain := os.Getenv("TERMFOLIO_NO_RAIN"); noRain != "" {
		if noRain == "1" || strings.ToLower(noRain) == "true" {
			c.Effects.BackgroundRain = false
		}
	}

	if profile := os.Getenv("TERMFOLIO_PROFILE"); profile != "" {
		c.Content.ProfilePath = profile
	}

	if file := os.Getenv("TERMFOLIO_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if level := os.Getenv("TERMFOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET HELPER (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using its file key in dot notation
// (e.g., "effects.typewriter_delay_ms").
func (c *Config) Get(key string) (interface{}, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() != reflect.Struct {
			return nil, fmt.Errorf("field '%s' is not a section", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// fieldByTag finds a struct field by its toml tag.
func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("toml"), ",")[0]
		if strings.EqualFold(tag, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// GetAllKeys returns every leaf key in dot notation, in declaration order.
func GetAllKeys() []string {
	var keys []string
	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := strings.Split(f.Tag.Get("toml"), ",")[0]
			if f.Type.Kind() == reflect.Struct {
				walk(f.Type, prefix+tag+".")
				continue
			}
			keys = append(keys, prefix+tag)
		}
	}
	walk(reflect.TypeOf(Config{}), "")
	return keys
}

// =============================================================================
// ENCODING
// =============================================================================

// Clone creates a copy of the configuration. Config holds no reference
// types, so a value copy is deep.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Encode writes the configuration as TOML, or YAML when format is "yaml".
func (c *Config) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return enc.Close()
	case "", "toml":
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, must be toml or yaml", format)
	}
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	_ = c.Encode(&buf, "toml")
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance. When SetGlobal has not
// been called it loads from the default locations on first access, falling
// back to defaults on error. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		globalConfigMu.Lock()
		defer globalConfigMu.Unlock()
		if globalConfig != nil {
			return
		}
		cfg, err := Load("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
