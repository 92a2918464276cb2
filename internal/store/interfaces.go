// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository stores accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProfileRepository stores the single profile document per account in the
// private partition.
type ProfileRepository interface {
	GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error)
	UpsertProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error)
}

// PrivateRecordRepository stores the day-level and split records of the
// private partition. Writes are keyed by the natural key of each record so
// that re-uploading the same day is idempotent.
type PrivateRecordRepository interface {
	ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error)
	UpsertDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error
	ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error)
	UpsertSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error
}

// PreferenceDocumentRepository is the server side of the replicated
// preference store.
type PreferenceDocumentRepository interface {
	GetDocument(ctx context.Context, accountID int64) (models.PreferenceDocument, error)
	PutDocument(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error)
	Revision(ctx context.Context, accountID int64) (int64, error)
}

// PublicRecordRepository stores day snapshots published for sharing.
type PublicRecordRepository interface {
	Publish(ctx context.Context, recordID string, ownerAccountID int64, day models.WorkoutDaySnapshot) error
	GetPublished(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error)
}
