// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package anim provides stoppable, repeating frame timers for Bubble Tea
// models.
//
// Every Ticker tags its frames with its own ID. A model routes a FrameMsg to
// the ticker that owns it; once the ticker is stopped its in-flight frame is
// dropped and no further frames are scheduled.
package anim
