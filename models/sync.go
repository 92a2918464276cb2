// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a step of the sign-in synchronization state machine. Stages are
// strictly ordered; a session never moves backwards.
type Stage int

const (
	StageCheckingAvailability Stage = iota
	StageSyncingPreferences
	StageSyncingFitnessProfile
	StageAwaitingLocalConvergence
	StageFallbackRemoteFetch
	StageComplete
)

var stageNames = map[Stage]string{
	StageCheckingAvailability:     "checking_availability",
	StageSyncingPreferences:       "syncing_preferences",
	StageSyncingFitnessProfile:    "syncing_fitness_profile",
	StageAwaitingLocalConvergence: "awaiting_local_convergence",
	StageFallbackRemoteFetch:      "fallback_remote_fetch",
	StageComplete:                 "complete",
}

// String returns the snake_case stage name used in logs.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Title returns a short human-readable label for progress screens.
func (s Stage) Title() string {
	switch s {
	case StageCheckingAvailability:
		return "Checking cloud account"
	case StageSyncingPreferences:
		return "Syncing preferences"
	case StageSyncingFitnessProfile:
		return "Syncing fitness profile"
	case StageAwaitingLocalConvergence:
		return "Waiting for workout history"
	case StageFallbackRemoteFetch:
		return "Downloading workout history"
	case StageComplete:
		return "Done"
	default:
		return ""
	}
}

// Outcome is the terminal result of a sync session.
type Outcome string

const (
	// OutcomeFound means at least one workout day is available locally.
	OutcomeFound Outcome = "found"

	// OutcomeNotFound means no data exists anywhere. This is the normal
	// result for a new account and is not an error.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeDegraded means the session could not determine whether data
	// exists because a store kept failing or the session was cancelled.
	OutcomeDegraded Outcome = "degraded"
)

// AdvisoryDatabaseUnavailable is the only user-visible failure text the sync
// subsystem produces. It never blocks the session.
const AdvisoryDatabaseUnavailable = "database temporarily unavailable"

// SyncSession is one run of the sign-in synchronization. It is created and
// mutated only by the orchestrator; callers receive a copy when the run ends.
type SyncSession struct {
	ID        uuid.UUID `json:"id"`
	AccountID int64     `json:"account_id"`

	Stage    Stage   `json:"stage"`
	Progress float64 `json:"progress"`

	// LastError is the last non-fatal error observed during the session.
	LastError error `json:"-"`

	// Advisory is set when the user should see a non-blocking message.
	Advisory string `json:"advisory,omitempty"`

	Outcome Outcome `json:"outcome"`

	// PollAttempts is the number of local reads issued while awaiting
	// convergence.
	PollAttempts int `json:"poll_attempts"`

	// RemoteAvailable is the result of the availability probe.
	RemoteAvailable bool `json:"remote_available"`

	// HandedOff is true when the background watcher was started at the end
	// of the session.
	HandedOff bool `json:"handed_off"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration returns how long the session ran.
func (s SyncSession) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// MergeResult reports what a merge pass did with a remote snapshot.
type MergeResult struct {
	// Inserted lists the natural keys of days inserted into the local store.
	Inserted []DayKey `json:"inserted"`

	// AlreadyPresent lists the natural keys skipped because a local record
	// with the same key already existed.
	AlreadyPresent []DayKey `json:"already_present"`

	// Orphaned counts days whose parent split could not be resolved.
	Orphaned int `json:"orphaned"`

	// Conflicts counts already present days whose content differs from the
	// remote copy. Informational only.
	Conflicts int `json:"conflicts"`

	// SplitsInserted counts parent splits created during the pass.
	SplitsInserted int `json:"splits_inserted"`
}

// InsertedCount returns len(Inserted).
func (r MergeResult) InsertedCount() int {
	return len(r.Inserted)
}
