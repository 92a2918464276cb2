// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/metrics"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// Fixed progress marks of the stages outside the convergence range.
const (
	progressCheckingAvailability = 0.05
	progressSyncingPreferences   = 0.15
	progressSyncingProfile       = 0.25
	progressFallbackRemoteFetch  = 0.90
	progressComplete             = 1.0
)

type syncOrchestrator struct {
	remote      adapter.RemoteStore
	preferences PreferenceService
	profiles    ProfileService
	merger      MergeReconciler
	watcher     BackgroundWatcher
	broadcaster *Broadcaster

	reader LocalDayReader
	poller *convergencePoller

	clock utils.Clock
	cfg   config.Sync
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewSyncOrchestrator(
	remote adapter.RemoteStore,
	preferences PreferenceService,
	profiles ProfileService,
	reader LocalDayReader,
	merger MergeReconciler,
	watcher BackgroundWatcher,
	broadcaster *Broadcaster,
	cfg config.Sync,
	clock utils.Clock,
	logger *logger.Logger,
) SyncOrchestrator {
	cfg, err := cfg.WithDefaults()
	if err != nil {
		logger.Err(err).Str("func", "NewSyncOrchestrator").Msg("sync defaults were not applied")
	}

	return &syncOrchestrator{
		remote:      remote,
		preferences: preferences,
		profiles:    profiles,
		merger:      merger,
		watcher:     watcher,
		broadcaster: broadcaster,
		reader:      reader,
		poller: &convergencePoller{
			reader:    reader,
			clock:     clock,
			interval:  cfg.PollInterval,
			attempts:  cfg.PollAttempts,
			maxErrors: cfg.MaxConsecutiveErrors,
		},
		clock:  clock,
		cfg:    cfg,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// sessionRun holds the mutable state of one Run. It is only touched by the
// goroutine executing Run.
type sessionRun struct {
	session     models.SyncSession
	broadcaster *Broadcaster
	log         *logger.Logger
}

// enter moves the session to stage and raises progress to at least p.
func (r *sessionRun) enter(stage models.Stage, p float64) {
	r.session.Stage = stage
	r.report(p)
}

// report raises progress; a lower value is ignored.
func (r *sessionRun) report(p float64) {
	if p > r.session.Progress {
		r.session.Progress = p
	}
	r.broadcaster.StageChanged(r.session.Stage, r.session.Progress)
}

func (o *syncOrchestrator) Run(ctx context.Context, accountID int64) models.SyncSession {
	run := &sessionRun{
		session: models.SyncSession{
			ID:        o.ids.New(),
			AccountID: accountID,
			StartedAt: o.clock.Now(),
		},
		broadcaster: o.broadcaster,
	}
	run.log = o.logger.ForSession(run.session.ID.String(), accountID)
	ctx = run.log.WithContext(ctx)

	run.log.Info().Msg("sync session started")

	handoff, cancelled := o.converge(ctx, run)

	if cancelled {
		// the bar still ends full; no Complete stage and no refresh
		run.report(progressComplete)
		o.finish(run)
		run.log.Warn().Err(run.session.LastError).Msg("sync session cancelled")
		return run.session
	}

	o.complete(run)

	if handoff {
		run.session.HandedOff = o.watcher.Start(accountID)
		run.log.Debug().Bool("started", run.session.HandedOff).Msg("handed off to background watcher")
	}

	o.finish(run)
	run.log.Info().
		Str("outcome", string(run.session.Outcome)).
		Int("poll_attempts", run.session.PollAttempts).
		Bool("handed_off", run.session.HandedOff).
		Dur("duration", run.session.Duration()).
		Msg("sync session finished")

	return run.session
}

// converge runs every stage before Complete and sets the outcome. It reports
// whether the background watcher should take over and whether the session
// was cancelled.
func (o *syncOrchestrator) converge(ctx context.Context, run *sessionRun) (handoff, cancelled bool) {
	accountID := run.session.AccountID

	run.enter(models.StageCheckingAvailability, progressCheckingAvailability)
	run.session.RemoteAvailable = o.remote.IsAvailable(ctx)
	if !run.session.RemoteAvailable {
		run.log.Info().Msg("remote store unavailable, continuing with local data only")
	}

	if run.session.RemoteAvailable {
		run.enter(models.StageSyncingPreferences, progressSyncingPreferences)
		if _, err := o.preferences.Pull(ctx, accountID, o.cfg.PreferenceTimeout); err != nil {
			o.advisoryFailure(run, err)
		}

		run.enter(models.StageSyncingFitnessProfile, progressSyncingProfile)
		if _, err := o.profiles.Sync(ctx, accountID, o.cfg.ProfileTimeout); err != nil {
			o.advisoryFailure(run, err)
		}
	}

	run.enter(models.StageAwaitingLocalConvergence, o.cfg.ProgressFloor)
	span := o.cfg.ProgressCeiling - o.cfg.ProgressFloor
	polled := o.poller.poll(ctx, accountID, func(attempt int) {
		run.session.PollAttempts = attempt
		run.report(o.cfg.ProgressFloor + span*float64(attempt)/float64(o.cfg.PollAttempts))
	})

	switch {
	case polled.Cancelled:
		run.session.Outcome = models.OutcomeDegraded
		run.session.LastError = polled.Err
		return false, true
	case polled.Found:
		run.session.Outcome = models.OutcomeFound
		return false, false
	case polled.Aborted:
		run.session.Outcome = models.OutcomeDegraded
		run.session.LastError = polled.Err
		run.session.Advisory = models.AdvisoryDatabaseUnavailable
		o.broadcaster.Advisory(models.AdvisoryDatabaseUnavailable)
		run.log.Warn().Err(polled.Err).Int("attempts", polled.Attempts).Msg("local store keeps failing, polling aborted")
		return false, false
	}

	if !run.session.RemoteAvailable {
		run.session.Outcome = models.OutcomeNotFound
		return true, false
	}

	run.enter(models.StageFallbackRemoteFetch, progressFallbackRemoteFetch)
	o.fallback(ctx, run)

	return run.session.Outcome != models.OutcomeFound, false
}

// advisoryFailure records a failed or timed out advisory stage. Neither
// stops the session.
func (o *syncOrchestrator) advisoryFailure(run *sessionRun, err error) {
	if errors.Is(err, ErrAdvisoryTimeout) {
		metrics.RecordStageTimeout(run.session.Stage.String())
		run.log.Debug().Str("stage", run.session.Stage.String()).Msg("advisory budget elapsed, continuing with local data")
		return
	}

	run.session.LastError = err
	run.log.Warn().Err(err).Str("stage", run.session.Stage.String()).Msg("stage failed, continuing with local data")
}

// fallback fetches the private partition, merges it and re-reads the local
// store once.
func (o *syncOrchestrator) fallback(ctx context.Context, run *sessionRun) {
	accountID := run.session.AccountID

	splits, err := o.remote.FetchSplitSnapshots(ctx, accountID)
	if err != nil {
		// days without a resolvable split are skipped by the merge
		run.log.Warn().Err(err).Msg("fetching remote splits failed")
		splits = nil
	}

	days, err := o.remote.FetchDaySnapshots(ctx, accountID)
	if err != nil {
		o.degrade(run, fmt.Errorf("fetching remote days: %w", err))
		return
	}

	result, err := o.merger.Merge(ctx, accountID, models.RemoteSnapshot{Splits: splits, Days: days})
	if err != nil {
		o.degrade(run, err)
		return
	}
	run.log.Info().
		Int("remote_days", len(days)).
		Int("inserted", result.InsertedCount()).
		Int("already_present", len(result.AlreadyPresent)).
		Int("orphaned", result.Orphaned).
		Msg("fallback merge finished")

	records, err := o.reader.QueryDayRecords(ctx, accountID)
	if err != nil {
		o.degrade(run, fmt.Errorf("re-reading local store: %w", err))
		return
	}

	if len(records) > 0 {
		run.session.Outcome = models.OutcomeFound
		return
	}
	run.session.Outcome = models.OutcomeNotFound
}

func (o *syncOrchestrator) degrade(run *sessionRun, err error) {
	run.session.Outcome = models.OutcomeDegraded
	run.session.LastError = err
	run.log.Warn().Err(err).Msg("fallback fetch failed")
}

// complete snaps progress to 1.0, holds for the configured time and emits
// the refresh signal. The hold is not interrupted by cancellation.
func (o *syncOrchestrator) complete(run *sessionRun) {
	run.enter(models.StageComplete, progressComplete)
	if o.cfg.CompletionHold > 0 {
		<-o.clock.After(o.cfg.CompletionHold)
	}
	o.broadcaster.DataRefreshed()
}

func (o *syncOrchestrator) finish(run *sessionRun) {
	run.session.FinishedAt = o.clock.Now()
	metrics.RecordSyncSession(string(run.session.Outcome), run.session.Duration(), run.session.PollAttempts)
}
