// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output models the terminal log: styled lines, structured blocks
// (projects, skills, commit history) and the append-only Log that the UI
// renders.
//
// # Key Types
//
//   - Line: a single line of text with an optional Style tag
//   - Block: anything that flattens to Lines (Line, ProjectList, SkillList, CommitLog)
//   - Log: ordered entries with per-entry typewriter reveal state
//
// Lines appended with animation start hidden and are revealed one rune per
// Reveal call. Reveals on entries that no longer exist (after Clear) are
// ignored, so timers that outlive a clear finish harmlessly.
package output
