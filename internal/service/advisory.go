// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

type advisoryResult[T any] struct {
	value T
	err   error
}

// withAdvisoryTimeout runs fetch on a context that ignores ctx's
// cancellation and waits for it at most timeout on clock. A fetch that loses
// the race keeps running and its result is dropped. The result crosses back
// through a channel, so the caller applies it on its own goroutine.
func withAdvisoryTimeout[T any](ctx context.Context, clock utils.Clock, timeout time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	results := make(chan advisoryResult[T], 1)
	go func() {
		value, err := fetch(context.WithoutCancel(ctx))
		results <- advisoryResult[T]{value: value, err: err}
	}()

	var (
		zero    T
		expired <-chan time.Time
	)
	if timeout > 0 {
		expired = clock.After(timeout)
	}

	select {
	case r := <-results:
		return r.value, r.err
	case <-expired:
		return zero, ErrAdvisoryTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// remainingBudget is what is left of timeout since start. A spent budget
// yields the smallest positive duration so the next race still expires.
func remainingBudget(clock utils.Clock, start time.Time, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return 0
	}
	left := timeout - clock.Now().Sub(start)
	if left <= 0 {
		return time.Nanosecond
	}
	return left
}
