// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
)

const defaultMirrorInterval = time.Minute

type clientMirrorJob struct {
	mirror MirrorService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientMirrorJob creates a job that calls mirror.Mirror on a ticker. The
// job is idle until Start is called.
func NewClientMirrorJob(mirror MirrorService, logger *logger.Logger) ClientMirrorJob {
	return &clientMirrorJob{mirror: mirror, logger: logger}
}

// Start stops any previously running job, then launches a goroutine that
// mirrors every interval. It exits when ctx is cancelled or Stop is called.
func (j *clientMirrorJob) Start(ctx context.Context, accountID int64, interval time.Duration) {
	if interval <= 0 {
		interval = defaultMirrorInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.mirror.Mirror(jobCtx, accountID); err != nil {
					j.logger.Debug().Err(err).Int64("account_id", accountID).Msg("mirror run failed")
				}
			}
		}
	}()
}

// Stop cancels the goroutine and blocks until it has exited. Safe to call
// when the job is not running.
func (j *clientMirrorJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
