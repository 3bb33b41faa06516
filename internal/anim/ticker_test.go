// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_Frames(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	require.NotEmpty(t, tk.ID())

	cmd := tk.Start()
	require.NotNil(t, cmd)

	msg, ok := cmd().(FrameMsg)
	require.True(t, ok)
	assert.Equal(t, tk.ID(), msg.ID)

	next, ok := tk.Accept(msg)
	require.True(t, ok)
	require.NotNil(t, next)
	assert.Equal(t, 1, tk.Frames())
}

func TestTicker_StopDropsFrames(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	msg := tk.Start()().(FrameMsg)

	tk.Stop()
	tk.Stop()
	assert.True(t, tk.Stopped())

	next, ok := tk.Accept(msg)
	assert.False(t, ok)
	assert.Nil(t, next)
	assert.Nil(t, tk.Start())
	assert.Equal(t, 0, tk.Frames())
}

func TestTicker_IgnoresForeignFrames(t *testing.T) {
	a := NewTicker(time.Millisecond)
	b := NewTicker(time.Millisecond)
	assert.NotEqual(t, a.ID(), b.ID())

	msg := b.Start()().(FrameMsg)
	assert.False(t, a.Owns(msg))
	_, ok := a.Accept(msg)
	assert.False(t, ok)
}

func TestTicker_Interval(t *testing.T) {
	tk := NewTicker(0)
	assert.Equal(t, 50*time.Millisecond, tk.Interval())

	tk.SetInterval(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, tk.Interval())

	tk.SetInterval(-1)
	assert.Equal(t, 20*time.Millisecond, tk.Interval())
}

var _ Handle = (*Ticker)(nil)
