// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService serves the private partition of the document database.
type RecordService interface {
	GetProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error)
	SaveProfile(ctx context.Context, profile models.FitnessProfile) (models.FitnessProfile, error)

	ListDays(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error)
	UploadDays(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error

	ListSplits(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error)
	UploadSplits(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

// PreferenceDocumentService serves the replicated preference store.
type PreferenceDocumentService interface {
	Get(ctx context.Context, accountID int64) (models.PreferenceDocument, error)
	Put(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error)
	Revision(ctx context.Context, accountID int64) (int64, error)
}

// PublicRecordService serves the public partition. Records are readable by
// any signed-in account that knows the identifier.
type PublicRecordService interface {
	Publish(ctx context.Context, accountID int64, day models.WorkoutDaySnapshot) (string, error)
	Get(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
