// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type preferenceDocumentService struct {
	documents store.PreferenceDocumentRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewPreferenceDocumentService(documents store.PreferenceDocumentRepository, logger *logger.Logger) PreferenceDocumentService {
	return &preferenceDocumentService{
		documents: documents,
		validator: validators.NewWorkoutValidator(),
		logger:    logger,
	}
}

// Get returns [store.ErrPreferencesNotFound] for an account that never
// wrote preferences.
func (p *preferenceDocumentService) Get(ctx context.Context, accountID int64) (models.PreferenceDocument, error) {
	if accountID <= 0 {
		return models.PreferenceDocument{}, ErrValidationNoAccountID
	}
	return p.documents.GetDocument(ctx, accountID)
}

// Put stores prefs and returns the new revision. A stale non-zero
// baseRevision yields [store.ErrRevisionConflict].
func (p *preferenceDocumentService) Put(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) (int64, error) {
	if accountID <= 0 {
		return 0, ErrValidationNoAccountID
	}

	request := models.PutPreferencesRequest{Preferences: prefs, BaseRevision: baseRevision}
	if err := p.validator.Validate(ctx, request); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if prefs.UpdatedAt == nil {
		now := time.Now().UTC()
		prefs.UpdatedAt = &now
	}

	revision, err := p.documents.PutDocument(ctx, accountID, prefs, baseRevision)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("account_id", accountID).
			Int64("base_revision", baseRevision).
			Msg("preference document write failed")
		return 0, fmt.Errorf("preference document write failed: %w", err)
	}

	return revision, nil
}

func (p *preferenceDocumentService) Revision(ctx context.Context, accountID int64) (int64, error) {
	if accountID <= 0 {
		return 0, ErrValidationNoAccountID
	}
	return p.documents.Revision(ctx, accountID)
}
