// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts runs and blocks until its context is cancelled.
type blockingWorker struct {
	runs atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run(context.Background()) })
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

type funcWorker func(ctx context.Context)

func (f funcWorker) Run(ctx context.Context) { f(ctx) }

func TestWorkers_Run_ReturnsWhenWorkersFinishOnTheirOwn(t *testing.T) {
	var mu sync.Mutex
	finished := 0
	quick := funcWorker(func(context.Context) {
		mu.Lock()
		finished++
		mu.Unlock()
	})

	NewWorkers(quick, quick).Run(context.Background())

	assert.Equal(t, 2, finished)
}
