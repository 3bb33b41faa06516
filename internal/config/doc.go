// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and live reload for termfolio.
//
// Supports both TOML and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - PromptConfig: The user@host:path$ echo prefix
//   - EffectsConfig: Typewriter, ping and rain timing
//   - UIConfig: Theme, banner and quick-command bar
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (TERMFOLIO_*)
//   - --config PATH
//   - ~/.termfolio/config.toml
//   - ~/.termfolio/config.yaml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load(flagPath)
//	if err != nil {
//	    return err
//	}
//	delay := cfg.Effects.TypewriterDelay()
//
// Watch hot-reloads a file:
//
//	go config.Watch(ctx, path, func(cfg *config.Config, err error) { ... })
package config
