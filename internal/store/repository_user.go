// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// AccountID and CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash).
			Scan(&created.AccountID, &created.Login, &created.Name, &created.PasswordHash, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByLogin retrieves the account with the given login.
//
// Error handling:
//   - no rows or PostgreSQL no_data_found (P0002) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, findUserByLogin, login).
		Scan(&found.AccountID, &found.Login, &found.Name, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Str("login", login).Msg("error finding user")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return found, nil
}
