// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

type clientAuthService struct {
	auth     adapter.Authenticator
	sessions store.LocalSessionRepository

	logger *logger.Logger
}

func NewClientAuthService(auth adapter.Authenticator, sessions store.LocalSessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

func (c *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	session, err := c.auth.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return c.persist(ctx, session)
}

func (c *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	session, err := c.auth.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return c.persist(ctx, session)
}

func (c *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := c.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("loading session: %w", err)
	}

	c.auth.SetToken(session.Token)
	c.logger.Debug().Int64("account_id", session.AccountID).Msg("session restored")

	return session, nil
}

func (c *clientAuthService) SignOut(ctx context.Context) error {
	c.auth.SetToken("")

	if err := c.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// persist keeps the session locally. Failing to persist does not undo the
// sign-in; the next start simply asks for credentials again.
func (c *clientAuthService) persist(ctx context.Context, session models.Session) (models.Session, error) {
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		c.logger.Warn().Err(err).Int64("account_id", session.AccountID).Msg("failed to persist session")
	}

	c.logger.Info().Int64("account_id", session.AccountID).Str("login", session.Login).Msg("signed in")
	return session, nil
}
