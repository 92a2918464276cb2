// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// Register POSTs the credentials to /api/auth/register. On success the
// bearer token is taken from the Authorization response header and stored.
func (t *Transport) Register(ctx context.Context, user models.User) (models.Session, error) {
	return t.authenticate(ctx, "/api/auth/register", user)
}

// Login POSTs the credentials to /api/auth/login.
func (t *Transport) Login(ctx context.Context, user models.User) (models.Session, error) {
	return t.authenticate(ctx, "/api/auth/login", user)
}

func (t *Transport) authenticate(ctx context.Context, path string, user models.User) (models.Session, error) {
	resp, err := t.execute(path, func() (*resty.Response, error) {
		return t.request(ctx).SetBody(user).Post(path)
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request %s: %w", path, err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
	}
	accountID, err := utils.ParseAccountIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("parse account id: %w", err)
	}

	t.SetToken(token)
	t.logger.Info().Str("func", "Transport.authenticate").Int64("account_id", accountID).Msg("signed in")

	return models.Session{
		AccountID: accountID,
		Login:     user.Login,
		Token:     token,
		SignedAt:  time.Now().UTC(),
	}, nil
}
