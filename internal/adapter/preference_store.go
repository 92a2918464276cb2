// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fit-keeper/models"
)

// HTTPPreferenceStore implements [PreferenceStore] over /api/kv.
type HTTPPreferenceStore struct {
	transport *Transport
}

// NewHTTPPreferenceStore returns a [PreferenceStore] sharing t's token and
// breaker.
func NewHTTPPreferenceStore(t *Transport) *HTTPPreferenceStore {
	return &HTTPPreferenceStore{transport: t}
}

func (p *HTTPPreferenceStore) Fetch(ctx context.Context) (models.PreferenceDocument, error) {
	req, err := p.transport.authedRequest(ctx)
	if err != nil {
		return models.PreferenceDocument{}, err
	}

	var doc models.PreferenceDocument
	_, err = p.transport.execute("fetch preferences", func() (*resty.Response, error) {
		return req.SetResult(&doc).Get("/api/kv/preferences")
	})
	if err != nil {
		return models.PreferenceDocument{}, fmt.Errorf("fetch preferences: %w", err)
	}
	return doc, nil
}

func (p *HTTPPreferenceStore) Put(ctx context.Context, prefs models.FitnessPreferences, baseRevision int64) (int64, error) {
	req, err := p.transport.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	var result models.RevisionResponse
	body := models.PutPreferencesRequest{Preferences: prefs, BaseRevision: baseRevision}
	_, err = p.transport.execute("put preferences", func() (*resty.Response, error) {
		return req.SetBody(body).SetResult(&result).Put("/api/kv/preferences")
	})
	if err != nil {
		return 0, fmt.Errorf("put preferences at revision %d: %w", baseRevision, err)
	}
	return result.Revision, nil
}

func (p *HTTPPreferenceStore) Revision(ctx context.Context) (int64, error) {
	req, err := p.transport.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	var result models.RevisionResponse
	_, err = p.transport.execute("preference revision", func() (*resty.Response, error) {
		return req.SetResult(&result).Get("/api/kv/revision")
	})
	if err != nil {
		return 0, fmt.Errorf("read preference revision: %w", err)
	}
	return result.Revision, nil
}

// Watch remembers the first revision it reads and calls onChange each time a
// later poll returns a different one. Failed polls are logged and skipped.
func (p *HTTPPreferenceStore) Watch(ctx context.Context, interval time.Duration, onChange func()) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	log := p.transport.logger.With().Str("func", "HTTPPreferenceStore.Watch").Logger()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		last  int64
		known bool
	)
	poll := func() {
		rev, err := p.Revision(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("preference revision poll failed")
			return
		}
		if known && rev != last {
			log.Info().Int64("from", last).Int64("to", rev).Msg("preferences changed remotely")
			onChange()
		}
		last, known = rev, true
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
