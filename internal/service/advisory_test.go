// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAdvisoryTimeout_ResultBeforeBudget(t *testing.T) {
	clock := newFakeClock(2 * time.Second)

	got, err := withAdvisoryTimeout(context.Background(), clock, 2*time.Second, func(context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, testEpoch, clock.Now())
}

func TestWithAdvisoryTimeout_ErrorPassedThrough(t *testing.T) {
	clock := newFakeClock(2 * time.Second)
	fetchErr := errors.New("boom")

	_, err := withAdvisoryTimeout(context.Background(), clock, 2*time.Second, func(context.Context) (int, error) {
		return 0, fetchErr
	})

	assert.ErrorIs(t, err, fetchErr)
}

func TestWithAdvisoryTimeout_BudgetWins(t *testing.T) {
	clock := newFakeClock()
	release := make(chan struct{})
	finished := make(chan struct{})

	got, err := withAdvisoryTimeout(context.Background(), clock, 2*time.Second, func(context.Context) (string, error) {
		defer close(finished)
		<-release
		return "late", nil
	})

	assert.ErrorIs(t, err, ErrAdvisoryTimeout)
	assert.Empty(t, got)
	assert.Equal(t, testEpoch.Add(2*time.Second), clock.Now())

	// the losing fetch still runs to completion
	close(release)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("fetch did not finish after release")
	}
}

func TestWithAdvisoryTimeout_CancelDoesNotReachFetch(t *testing.T) {
	clock := newFakeClock(2 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	fetchCtx := make(chan context.Context, 1)
	release := make(chan struct{})
	defer close(release)

	go func() {
		<-fetchCtx
		cancel()
	}()

	_, err := withAdvisoryTimeout(ctx, clock, 2*time.Second, func(c context.Context) (int, error) {
		fetchCtx <- c
		<-release
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithAdvisoryTimeout_FetchContextSurvivesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var captured context.Context

	_, err := withAdvisoryTimeout(ctx, newFakeClock(time.Second), time.Second, func(c context.Context) (int, error) {
		captured = c
		return 0, nil
	})
	require.NoError(t, err)

	cancel()
	assert.NoError(t, captured.Err())
}
