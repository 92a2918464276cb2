// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// HTTPRemoteStore implements [RemoteStore] over the server REST API.
type HTTPRemoteStore struct {
	transport *Transport
}

// NewHTTPRemoteStore returns a [RemoteStore] sharing t's token and breaker.
func NewHTTPRemoteStore(t *Transport) *HTTPRemoteStore {
	return &HTTPRemoteStore{transport: t}
}

// IsAvailable returns false without a network call when no token is held or
// the breaker is open. Otherwise it probes GET /api/health.
func (s *HTTPRemoteStore) IsAvailable(ctx context.Context) bool {
	if s.transport.Token() == "" || s.transport.BreakerOpen() {
		return false
	}

	_, err := s.transport.execute("health", func() (*resty.Response, error) {
		return s.transport.request(ctx).Get("/api/health")
	})
	if err != nil {
		s.transport.logger.Debug().Err(err).Str("func", "HTTPRemoteStore.IsAvailable").Msg("remote store unavailable")
		return false
	}
	return true
}

func (s *HTTPRemoteStore) FetchProfile(ctx context.Context, accountID int64) (*models.FitnessProfile, error) {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var profile models.FitnessProfile
	_, err = s.transport.execute("fetch profile", func() (*resty.Response, error) {
		return req.SetResult(&profile).Get("/api/profile")
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch profile of account %d: %w", accountID, err)
	}

	return &profile, nil
}

func (s *HTTPRemoteStore) SaveProfile(ctx context.Context, profile models.FitnessProfile) error {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return err
	}

	_, err = s.transport.execute("save profile", func() (*resty.Response, error) {
		return req.SetBody(profile).Put("/api/profile")
	})
	if err != nil {
		return fmt.Errorf("save profile of account %d: %w", profile.AccountID, err)
	}
	return nil
}

func (s *HTTPRemoteStore) FetchDaySnapshots(ctx context.Context, accountID int64) ([]models.WorkoutDaySnapshot, error) {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.DaysResponse
	_, err = s.transport.execute("fetch days", func() (*resty.Response, error) {
		return req.SetResult(&result).Get("/api/days")
	})
	if err != nil {
		return nil, fmt.Errorf("fetch days of account %d: %w", accountID, err)
	}

	return result.Days, nil
}

func (s *HTTPRemoteStore) FetchSplitSnapshots(ctx context.Context, accountID int64) ([]models.SplitSnapshot, error) {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.SplitsResponse
	_, err = s.transport.execute("fetch splits", func() (*resty.Response, error) {
		return req.SetResult(&result).Get("/api/splits")
	})
	if err != nil {
		return nil, fmt.Errorf("fetch splits of account %d: %w", accountID, err)
	}

	return result.Splits, nil
}

func (s *HTTPRemoteStore) UploadDaySnapshots(ctx context.Context, accountID int64, days []models.WorkoutDaySnapshot) error {
	if len(days) == 0 {
		return nil
	}

	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return err
	}

	body := models.UploadDaysRequest{
		AccountID: accountID,
		Days:      days,
		Hash:      s.transport.integrityHash(days),
		Length:    len(days),
	}
	_, err = s.transport.execute("upload days", func() (*resty.Response, error) {
		return req.SetBody(body).Post("/api/days")
	})
	if err != nil {
		return fmt.Errorf("upload %d days of account %d: %w", len(days), accountID, err)
	}
	return nil
}

func (s *HTTPRemoteStore) UploadSplitSnapshots(ctx context.Context, accountID int64, splits []models.SplitSnapshot) error {
	if len(splits) == 0 {
		return nil
	}

	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return err
	}

	body := models.UploadSplitsRequest{
		AccountID: accountID,
		Splits:    splits,
		Hash:      s.transport.integrityHash(splits),
		Length:    len(splits),
	}
	_, err = s.transport.execute("upload splits", func() (*resty.Response, error) {
		return req.SetBody(body).Post("/api/splits")
	})
	if err != nil {
		return fmt.Errorf("upload %d splits of account %d: %w", len(splits), accountID, err)
	}
	return nil
}

func (s *HTTPRemoteStore) PublishRecord(ctx context.Context, day models.WorkoutDaySnapshot) (string, error) {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var result models.PublishResponse
	_, err = s.transport.execute("publish record", func() (*resty.Response, error) {
		return req.SetBody(models.PublishRequest{Day: day}).SetResult(&result).Post("/api/public")
	})
	if err != nil {
		return "", fmt.Errorf("publish day %s: %w", day.Key(), err)
	}
	return result.RecordID, nil
}

func (s *HTTPRemoteStore) FetchPublicRecord(ctx context.Context, recordID string) (models.WorkoutDaySnapshot, error) {
	req, err := s.transport.authedRequest(ctx)
	if err != nil {
		return models.WorkoutDaySnapshot{}, err
	}

	var day models.WorkoutDaySnapshot
	_, err = s.transport.execute("fetch public record", func() (*resty.Response, error) {
		return req.SetPathParam("id", recordID).SetResult(&day).Get("/api/public/{id}")
	})
	if err != nil {
		return models.WorkoutDaySnapshot{}, fmt.Errorf("fetch public record %s: %w", recordID, err)
	}
	return day, nil
}
