// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
)

type spyMirrorJob struct {
	mu        sync.Mutex
	started   bool
	stopped   bool
	accountID int64
	interval  time.Duration
}

func (j *spyMirrorJob) Start(_ context.Context, accountID int64, interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.started = true
	j.accountID = accountID
	j.interval = interval
}

func (j *spyMirrorJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopped = true
}

func (j *spyMirrorJob) state() (bool, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.started, j.stopped
}

func TestMirrorWorker_StopsJobWithContext(t *testing.T) {
	job := &spyMirrorJob{}
	w := NewMirrorWorker(job, 9, config.Workers{MirrorInterval: 30 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		started, _ := job.state()
		return started
	}, time.Second, 5*time.Millisecond)

	_, stopped := job.state()
	assert.False(t, stopped)

	cancel()
	<-done

	_, stopped = job.state()
	assert.True(t, stopped)
	assert.Equal(t, int64(9), job.accountID)
	assert.Equal(t, 30*time.Second, job.interval)
}
