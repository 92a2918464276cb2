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
	"github.com/MKhiriev/go-fit-keeper/models"
)

type clientProfileService struct {
	local       store.LocalProfileRepository
	sessions    store.LocalSessionRepository
	remote      adapter.RemoteStore
	preferences PreferenceService
	clock       utils.Clock

	logger *logger.Logger
}

func NewClientProfileService(local store.LocalProfileRepository, sessions store.LocalSessionRepository, remote adapter.RemoteStore, preferences PreferenceService, clock utils.Clock, logger *logger.Logger) ProfileService {
	return &clientProfileService{
		local:       local,
		sessions:    sessions,
		remote:      remote,
		preferences: preferences,
		clock:       clock,
		logger:      logger,
	}
}

func (p *clientProfileService) Sync(ctx context.Context, accountID int64, timeout time.Duration) (models.FitnessProfile, error) {
	fetch := func(ctx context.Context) (*models.FitnessProfile, error) {
		return p.remote.FetchProfile(ctx, accountID)
	}

	start := p.clock.Now()
	remote, err := withAdvisoryTimeout(ctx, p.clock, timeout, fetch)
	if err != nil {
		local, localErr := p.local.GetProfile(ctx, accountID)
		if localErr != nil {
			return models.FitnessProfile{AccountID: accountID}, err
		}
		return local, err
	}

	if remote != nil {
		remote.AccountID = accountID
		if err = p.local.SaveProfile(ctx, *remote); err != nil {
			return *remote, fmt.Errorf("caching remote profile: %w", err)
		}
		return *remote, nil
	}

	// first sync of this account: create the document from local state
	profile, err := p.local.GetProfile(ctx, accountID)
	if errors.Is(err, store.ErrProfileNotFound) {
		profile, err = p.newProfile(ctx, accountID)
	}
	if err != nil {
		return models.FitnessProfile{AccountID: accountID}, fmt.Errorf("building local profile: %w", err)
	}

	// a creation that outlives the budget finishes in the background
	create := func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.create(ctx, profile)
	}
	if _, err = withAdvisoryTimeout(ctx, p.clock, remainingBudget(p.clock, start, timeout), create); err != nil {
		return profile, err
	}

	logger.FromContext(ctx).Info().Int64("account_id", accountID).Msg("remote profile created")
	return profile, nil
}

func (p *clientProfileService) create(ctx context.Context, profile models.FitnessProfile) error {
	if err := p.remote.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("creating remote profile: %w", err)
	}
	if err := p.local.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("caching profile: %w", err)
	}
	return nil
}

func (p *clientProfileService) Save(ctx context.Context, profile models.FitnessProfile) error {
	if profile.AccountID <= 0 {
		return ErrValidationNoAccountID
	}

	now := p.clock.Now()
	if profile.CreatedAt == nil {
		profile.CreatedAt = &now
	}
	profile.UpdatedAt = &now

	if err := p.local.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("saving local profile: %w", err)
	}
	if err := p.remote.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("saving remote profile: %w", err)
	}
	return nil
}

func (p *clientProfileService) newProfile(ctx context.Context, accountID int64) (models.FitnessProfile, error) {
	prefs, err := p.preferences.Local(ctx, accountID)
	if err != nil {
		return models.FitnessProfile{}, err
	}

	var displayName string
	if session, err := p.sessions.LoadSession(ctx); err == nil && session.AccountID == accountID {
		displayName = session.Login
	}

	now := p.clock.Now()
	return models.FitnessProfile{
		AccountID:   accountID,
		DisplayName: displayName,
		Preferences: prefs,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}, nil
}
