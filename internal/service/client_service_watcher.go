// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

// ConvergenceWatcher is the background continuation of a sync session. It
// keeps polling the local store after the session is dismissed and emits the
// refresh signal once data shows up. One watcher exists per process; it is
// started by the orchestrator and stopped on sign-out.
type ConvergenceWatcher struct {
	baseCtx     context.Context
	poller      *convergencePoller
	broadcaster *Broadcaster

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// NewConvergenceWatcher builds an idle watcher. Runs derive their context
// from baseCtx, so cancelling it stops any run as well.
func NewConvergenceWatcher(baseCtx context.Context, reader LocalDayReader, broadcaster *Broadcaster, cfg config.Sync, clock utils.Clock, logger *logger.Logger) *ConvergenceWatcher {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		logger.Err(err).Str("func", "NewConvergenceWatcher").Msg("sync defaults were not applied")
	}

	return &ConvergenceWatcher{
		baseCtx: baseCtx,
		poller: &convergencePoller{
			reader:     reader,
			clock:      clock,
			interval:   cfg.WatcherInterval,
			attempts:   cfg.WatcherAttempts,
			maxErrors:  cfg.MaxConsecutiveErrors,
			sleepFirst: true,
		},
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Start launches a run for accountID. It returns false and does nothing when
// a run is already in progress.
func (w *ConvergenceWatcher) Start(accountID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(w.baseCtx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done

	metrics.WatcherActive.Set(1)
	go w.run(ctx, accountID, done)

	return true
}

// Stop cancels the current run and blocks until it has exited. Safe to call
// when nothing is running.
func (w *ConvergenceWatcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a run is in progress.
func (w *ConvergenceWatcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// Wait blocks until the current run, if any, has exited.
func (w *ConvergenceWatcher) Wait() {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (w *ConvergenceWatcher) run(ctx context.Context, accountID int64, done chan struct{}) {
	log := w.logger.With().Int64("account_id", accountID).Logger()

	defer func() {
		w.mu.Lock()
		if w.done == done {
			w.cancel()
			w.cancel = nil
			w.done = nil
		}
		w.mu.Unlock()

		metrics.WatcherActive.Set(0)
		close(done)
	}()

	log.Debug().Msg("background watcher started")
	result := w.poller.poll(ctx, accountID, nil)

	switch {
	case result.Found:
		metrics.RecordWatcherRun("found")
		log.Info().Int("attempts", result.Attempts).Int("records", len(result.Records)).Msg("late convergence detected")
		w.broadcaster.DataRefreshed()
	case result.Cancelled:
		metrics.RecordWatcherRun("cancelled")
		log.Debug().Int("attempts", result.Attempts).Msg("background watcher cancelled")
	case result.Aborted:
		metrics.RecordWatcherRun("aborted")
		log.Warn().Err(result.Err).Int("attempts", result.Attempts).Msg("background watcher aborted on read errors")
	default:
		metrics.RecordWatcherRun("exhausted")
		log.Debug().Int("attempts", result.Attempts).Msg("background watcher found nothing")
	}
}
