// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/internal/validators"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type clientPreferenceService struct {
	local     store.LocalPreferenceRepository
	remote    adapter.PreferenceStore
	validator validators.Validator
	clock     utils.Clock

	logger *logger.Logger
}

func NewClientPreferenceService(local store.LocalPreferenceRepository, remote adapter.PreferenceStore, clock utils.Clock, logger *logger.Logger) PreferenceService {
	return &clientPreferenceService{
		local:     local,
		remote:    remote,
		validator: validators.NewWorkoutValidator(),
		clock:     clock,
		logger:    logger,
	}
}

func (p *clientPreferenceService) Local(ctx context.Context, accountID int64) (models.FitnessPreferences, error) {
	row, err := p.local.GetPreferences(ctx, accountID)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return models.DefaultFitnessPreferences(), nil
	}
	if err != nil {
		return models.FitnessPreferences{}, fmt.Errorf("reading local preferences: %w", err)
	}

	return row.Preferences, nil
}

func (p *clientPreferenceService) Save(ctx context.Context, accountID int64, prefs models.FitnessPreferences) error {
	if err := p.validator.Validate(ctx, prefs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := p.clock.Now()
	prefs.UpdatedAt = &now
	if err := p.local.SaveLocal(ctx, accountID, prefs); err != nil {
		return fmt.Errorf("saving local preferences: %w", err)
	}

	if err := p.Replicate(ctx, accountID); err != nil {
		// the row stays dirty and is retried by the mirror job
		logger.FromContext(ctx).Warn().Err(err).Int64("account_id", accountID).Msg("replicating preferences failed")
	}

	return nil
}

func (p *clientPreferenceService) Replicate(ctx context.Context, accountID int64) error {
	row, err := p.local.GetPreferences(ctx, accountID)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading local preferences: %w", err)
	}
	if !row.Dirty {
		return nil
	}

	return p.push(ctx, accountID, row.Preferences, row.Revision)
}

// pushWithin writes the local edit under what is left of the pull budget. A
// write that outlives the budget finishes in the background; the row stays
// dirty until it does.
func (p *clientPreferenceService) pushWithin(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64, budget time.Duration) {
	_, err := withAdvisoryTimeout(ctx, p.clock, budget, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.push(ctx, accountID, prefs, baseRevision)
	})
	switch {
	case errors.Is(err, ErrAdvisoryTimeout):
		logger.FromContext(ctx).Debug().Int64("account_id", accountID).Msg("preference write continues in background")
	case err != nil:
		logger.FromContext(ctx).Warn().Err(err).Int64("account_id", accountID).Msg("pushing local preferences failed")
	}
}

func (p *clientPreferenceService) push(ctx context.Context, accountID int64, prefs models.FitnessPreferences, baseRevision int64) error {
	revision, err := p.remote.Put(ctx, prefs, baseRevision)
	if err != nil {
		return fmt.Errorf("writing replicated preferences: %w", err)
	}

	if err = p.local.ApplyRemote(ctx, accountID, prefs, revision); err != nil {
		return fmt.Errorf("recording replicated revision: %w", err)
	}
	return nil
}

// Pull reconciles the two copies. The replicated document wins unless the
// local row holds an edit made on top of the very revision the store still
// has, in which case the edit is pushed instead.
func (p *clientPreferenceService) Pull(ctx context.Context, accountID int64, timeout time.Duration) (models.FitnessPreferences, error) {
	start := p.clock.Now()
	doc, err := withAdvisoryTimeout(ctx, p.clock, timeout, p.remote.Fetch)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		local, localErr := p.Local(ctx, accountID)
		if localErr != nil {
			return models.DefaultFitnessPreferences(), errors.Join(err, localErr)
		}
		return local, err
	}

	row, localErr := p.local.GetPreferences(ctx, accountID)
	hasLocal := localErr == nil
	if localErr != nil && !errors.Is(localErr, store.ErrPreferencesNotFound) {
		return models.DefaultFitnessPreferences(), fmt.Errorf("reading local preferences: %w", localErr)
	}

	remoteEmpty := errors.Is(err, adapter.ErrNotFound) || doc.Preferences.IsZero()
	if remoteEmpty {
		if !hasLocal {
			return models.DefaultFitnessPreferences(), nil
		}
		// seed the store from this device
		p.pushWithin(ctx, accountID, row.Preferences, 0, remainingBudget(p.clock, start, timeout))
		return row.Preferences, nil
	}

	if hasLocal && row.Dirty && row.Revision == doc.Revision {
		p.pushWithin(ctx, accountID, row.Preferences, row.Revision, remainingBudget(p.clock, start, timeout))
		return row.Preferences, nil
	}

	if err = p.local.ApplyRemote(ctx, accountID, doc.Preferences, doc.Revision); err != nil {
		return doc.Preferences, fmt.Errorf("applying replicated preferences: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("revision", doc.Revision).Msg("replicated preferences applied")
	return doc.Preferences, nil
}
