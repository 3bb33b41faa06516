// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the rendering pieces of the termfolio TUI.

# Display Components

Banner (header.go) - Block-letter header, falling back to a one-line title.
QuickBar (quickbar.go) - F1-F8 shortcut footer that wraps on narrow screens.
RenderLog (logview.go) - Output log rendering with per-line styles.
RenderSkillBars (skillbars.go) - Proficiency bars built on bubbles/progress.
CommandBox (codeblock.go) - Framed, chroma-highlighted shell command.

# Overlays and Animation

RainView (rainview.go) - Falling-glyph background composed around a panel.
Modal (modal.go) - Easter-egg overlay with a glamour body and optional rain.

Components are value renderers: they hold no tea.Model of their own and are
driven by the terminal model, which forwards frames and sizes to them.
*/
package components
