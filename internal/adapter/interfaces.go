// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the go-fit-keeper
// server.
//
// Three narrow interfaces decouple the service layer from HTTP:
// [Authenticator] for accounts, [RemoteStore] for the managed document
// database (private and public partitions) and [PreferenceStore] for the
// replicated key-value preference store. A single [Transport] carries the
// bearer token, the upload integrity key and a circuit breaker shared by all
// of them.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrRemoteUnavailable] when the
// server cannot be reached or the breaker is open).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Authenticator signs the client in and keeps the bearer token used by the
// other adapters.
type Authenticator interface {
	// Register creates the account and signs in.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login signs in with login and password.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// SetToken restores a token persisted by an earlier session.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string
}

// RemoteStore is the client of the managed document database.
type RemoteStore interface {
	// IsAvailable reports whether the account is signed in and the server
	// is reachable. It never returns an error.
	IsAvailable(ctx context.Context) bool

	// FetchProfile returns nil without error when the account has no
	// profile document yet.
	FetchProfile(ctx context.Context, accountID int64) (*models.FitnessProfile, error)
	SaveProfile(ctx context.Context, profile models.FitnessProfile) error

	FetchDaySnapshots(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error)
	FetchSplitSnapshots(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error)
	UploadDaySnapshots(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error
	UploadSplitSnapshots(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error

	// PublishRecord copies a day to the public partition and returns its id.
	PublishRecord(ctx context.Context, day models.WorkoutDaySnapshot) (string, error)
	FetchPublicRecord(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error)
}

// PreferenceStore is the replicated key-value store holding the fitness
// preferences of the signed-in account.
type PreferenceStore interface {
	// Fetch returns [ErrNotFound] when the account never wrote preferences.
	Fetch(ctx context.Context) (models.PreferenceDocument, error)

	// Put replaces the document and returns the new revision. A non-zero
	// baseRevision makes the write conditional; a stale one yields
	// [ErrConflict].
	Put(ctx context.Context, prefs models.FitnessPreferences, baseRevision int64) (int64, error)

	// Revision returns the current revision, zero when nothing was written.
	Revision(ctx context.Context) (int64, error)

	// Watch polls the revision every interval and calls onChange when it
	// moves. It blocks until ctx is done.
	Watch(ctx context.Context, interval time.Duration, onChange func())
}
