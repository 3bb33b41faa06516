// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rain simulates the falling-character "digital rain" effect on a
// grid of terminal cells.
//
// The grid is pure state: Step advances one frame, Resize follows the
// terminal, and renderers read cells through At. Timing lives elsewhere (see
// package anim).
//
// Each column is ColumnWidth cells wide so that full-width katakana never
// overlap. A drop paints a random glyph at its head every frame, then moves
// down one row. Once a drop has fallen past the bottom it restarts at the
// top with a small probability per frame, which staggers the columns.
// Painted cells fade over FadeSteps frames.
package rain
