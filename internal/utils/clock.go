// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"time"
)

// Clock is the time source used by every polling loop and advisory timeout.
// Production code uses [SystemClock]; tests substitute a virtual clock so a
// forty-iteration poll runs without wall-clock delay.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once d has
	// elapsed.
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall-clock implementation of [Clock].
type SystemClock struct{}

// NewSystemClock returns a wall-clock [Clock].
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// After delegates to time.After.
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Sleep blocks for d on the given clock. It returns ctx.Err() when the
// context is cancelled first.
func Sleep(ctx context.Context, clock Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}
