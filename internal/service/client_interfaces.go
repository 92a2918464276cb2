// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// LocalDayReader is the single primitive the convergence loops poll.
type LocalDayReader interface {
	QueryDayRecords(ctx context.Context, accountID int64) ([]models.DayRecord, error)
}

// MergeReconciler inserts the part of a remote snapshot the local store has
// never seen. A merge pass runs in one local transaction and is idempotent:
// a second pass over the same snapshot inserts nothing.
type MergeReconciler interface {
	Merge(ctx context.Context, accountID int64, snapshot models.RemoteSnapshot) (models.MergeResult, error)
}

// BackgroundWatcher continues convergence polling after a sign-in session
// has been dismissed.
type BackgroundWatcher interface {
	// Start returns false when a watcher loop is already running.
	Start(accountID int64) bool
}

// ClientAuthService signs the client in and keeps the session in the local
// store so that an offline restart can run a local-only sync.
type ClientAuthService interface {
	// Register creates the account on the server, then signs in.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login signs in and persists the session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Restore loads the persisted session and hands its token to the
	// transport. Returns [ErrNotSignedIn] when nothing is stored.
	Restore(ctx context.Context) (models.Session, error)

	// SignOut forgets the token and the persisted session.
	SignOut(ctx context.Context) error
}

// PreferenceService owns the fitness preferences. The local config table is
// the read surface; the replicated store is written behind it and pulled
// from at sign-in and on remote change.
type PreferenceService interface {
	// Local returns the local preferences, or the defaults when none are
	// stored yet.
	Local(ctx context.Context, accountID int64) (models.FitnessPreferences, error)

	// Save writes locally first, then replicates. A failed replication
	// leaves the local row dirty for [PreferenceService.Replicate].
	Save(ctx context.Context, accountID int64, prefs models.FitnessPreferences) error

	// Pull fetches the replicated document with an advisory timeout and
	// applies it locally. On timeout it returns the local preferences and
	// [ErrAdvisoryTimeout].
	Pull(ctx context.Context, accountID int64, timeout time.Duration) (models.FitnessPreferences, error)

	// Replicate pushes a dirty local row to the replicated store.
	Replicate(ctx context.Context, accountID int64) error
}

// ProfileService owns the remote profile document of the account.
type ProfileService interface {
	// Sync pulls the remote profile with an advisory timeout. A found
	// profile is stored locally; a missing one is created from the local
	// state.
	Sync(ctx context.Context, accountID int64, timeout time.Duration) (models.FitnessProfile, error)

	// Save updates the local profile and pushes it to the remote store.
	Save(ctx context.Context, profile models.FitnessProfile) error
}

// SharingService moves single days through the public partition.
type SharingService interface {
	// Share publishes the local day stored under key and returns the
	// public record id.
	Share(ctx context.Context, accountID int64, key models.DayKey) (string, error)

	// Import merges a public record into the local store of accountID.
	Import(ctx context.Context, accountID int64, recordID string) (models.MergeResult, error)
}

// WorkoutService records workouts in the local store.
type WorkoutService interface {
	// RecordDay stores a new day graph and returns it with its local ids.
	// A day already stored under the same natural key yields
	// [store.ErrDayAlreadyExists].
	RecordDay(ctx context.Context, day models.DayRecord) (models.DayRecord, error)

	// Days lists the day rows of the account.
	Days(ctx context.Context, accountID int64) ([]models.DayRecord, error)

	// Day returns one day with its exercises and sets.
	Day(ctx context.Context, accountID int64, key models.DayKey) (models.DayRecord, error)
}

// MirrorService replicates the local store to the private partition and
// back. It stands in for the platform mirroring the local store silently.
type MirrorService interface {
	// Mirror uploads unmirrored local days and splits, then merges remote
	// days the local store lacks.
	Mirror(ctx context.Context, accountID int64) (models.MergeResult, error)
}

// ClientMirrorJob runs [MirrorService.Mirror] in the background.
type ClientMirrorJob interface {
	// Start launches the background goroutine. Any running job is stopped
	// first. A non-positive interval defaults to one minute.
	Start(ctx context.Context, accountID int64, interval time.Duration)

	// Stop cancels the goroutine and blocks until it has exited.
	Stop()
}

// SyncOrchestrator drives one sign-in synchronization session.
type SyncOrchestrator interface {
	// Run walks the session through its stages and returns the finished
	// session. It never fails: every error degrades into the outcome.
	// Cancelling ctx stops the session at the next iteration boundary.
	Run(ctx context.Context, accountID int64) models.SyncSession
}
