// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides rune- and cell-width aware string helpers shared by
// the renderers.
//
// Terminal cells and runes are not the same thing: katakana and other wide
// glyphs occupy two cells. Anything that pads, truncates or reveals text one
// character at a time goes through this package.
//
//	util.RunePrefix("hello", 3)      // "hel"
//	util.PadWidth("ア", 4)            // "ア  "
//	util.TruncateWidth("abcdef", 4)  // "a..."
package util
