// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
)

// PreferenceWatchWorker pulls the replicated preferences into the local
// config table whenever their revision moves, then signals a refresh.
type PreferenceWatchWorker struct {
	watcher     RevisionWatcher
	preferences service.PreferenceService
	notifier    RefreshNotifier

	accountID   int64
	interval    time.Duration
	pullTimeout time.Duration

	logger *logger.Logger
}

func NewPreferenceWatchWorker(
	watcher RevisionWatcher,
	preferences service.PreferenceService,
	notifier RefreshNotifier,
	accountID int64,
	workersCfg config.Workers,
	syncCfg config.Sync,
	logger *logger.Logger,
) *PreferenceWatchWorker {
	syncCfg, err := syncCfg.WithDefaults()
	if err != nil {
		logger.Err(err).Str("func", "NewPreferenceWatchWorker").Msg("sync defaults were not applied")
	}

	return &PreferenceWatchWorker{
		watcher:     watcher,
		preferences: preferences,
		notifier:    notifier,
		accountID:   accountID,
		interval:    workersCfg.PreferenceWatchInterval,
		pullTimeout: syncCfg.PreferenceTimeout,
		logger:      logger,
	}
}

func (w *PreferenceWatchWorker) Run(ctx context.Context) {
	w.logger.Info().Int64("account_id", w.accountID).Dur("interval", w.interval).Msg("preference watch started")
	w.watcher.Watch(ctx, w.interval, func() { w.onChange(ctx) })
	w.logger.Info().Int64("account_id", w.accountID).Msg("preference watch stopped")
}

func (w *PreferenceWatchWorker) onChange(ctx context.Context) {
	prefs, err := w.preferences.Pull(ctx, w.accountID, w.pullTimeout)
	switch {
	case errors.Is(err, service.ErrAdvisoryTimeout):
		w.logger.Debug().Int64("account_id", w.accountID).Msg("preference pull timed out, next revision change retries")
		return
	case err != nil:
		w.logger.Warn().Err(err).Int64("account_id", w.accountID).Msg("preference pull failed")
		return
	}

	w.logger.Debug().Int64("account_id", w.accountID).Str("goal", prefs.Goal).Msg("preferences changed on another device")
	w.notifier.DataRefreshed()
}
