// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDayRepository is the local transactional store of workout days.
// Every write goes through RunInTx so a day graph is stored entirely or not
// at all.
type LocalDayRepository interface {
	// QueryDayRecords returns the flat day rows of the account, newest first.
	QueryDayRecords(ctx context.Context, accountID int64) ([]models.DayRecord, error)
	// GetDayGraph returns one day together with its exercises and sets.
	GetDayGraph(ctx context.Context, accountID int64, key models.DayKey) (models.DayRecord, error)
	// ListUnmirrored returns the day graphs not yet replicated remotely.
	ListUnmirrored(ctx context.Context, accountID int64) ([]models.DayRecord, error)
	// ListSplits returns every local split of the account.
	ListSplits(ctx context.Context, accountID int64) ([]models.Split, error)
	// MarkMirrored flags days as replicated.
	MarkMirrored(ctx context.Context, accountID int64, dayIDs ...int64) error
	// RunInTx runs fn inside one local transaction.
	RunInTx(ctx context.Context, fn func(tx LocalDayTx) error) error
}

// LocalDayTx is the set of operations available inside a local transaction.
type LocalDayTx interface {
	FindSplitByName(ctx context.Context, accountID int64, name string) (models.Split, error)
	InsertSplit(ctx context.Context, split models.Split) (int64, error)
	// FindDayByNaturalKey returns the local id and content hash of a day.
	FindDayByNaturalKey(ctx context.Context, accountID int64, key models.DayKey) (int64, string, error)
	// InsertDayGraph stores a day with its exercises and sets.
	InsertDayGraph(ctx context.Context, day models.DayRecord) (int64, error)
}

// LocalSessionRepository persists the signed-in session.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// LocalPreferenceRepository is the local config table holding the
// authoritative copy of the fitness preferences.
type LocalPreferenceRepository interface {
	GetPreferences(ctx context.Context, accountID int64) (models.LocalPreferences, error)
	// SaveLocal stores a local edit and marks it dirty.
	SaveLocal(ctx context.Context, accountID int64, prefs models.FitnessPreferences) error
	// ApplyRemote stores values read from the replicated store and clears
	// the dirty flag.
	ApplyRemote(ctx context.Context, accountID int64, prefs models.FitnessPreferences, revision int64) error
}

// LocalProfileRepository caches the fitness profile document locally.
type LocalProfileRepository interface {
	GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error)
	SaveProfile(ctx context.Context, profile models.FitnessProfile) error
}
