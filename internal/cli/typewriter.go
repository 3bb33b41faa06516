// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// Typewriter writes text one rune at a time at a fixed rate.
type Typewriter struct {
	limiter *rate.Limiter
}

// NewTypewriter creates a typewriter emitting one rune per delay.
func NewTypewriter(delay time.Duration) *Typewriter {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &Typewriter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Type writes text to w rune by rune. It stops early, returning the context
// error, when ctx is cancelled.
func (t *Typewriter) Type(ctx context.Context, w io.Writer, text string) error {
	for _, r := range text {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, string(r)); err != nil {
			return err
		}
	}
	return nil
}
