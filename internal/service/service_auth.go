// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	tokenDuration time.Duration

	// bcryptCost is lowered in tests.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser validates the credentials, hashes the password and creates
// the account. A taken login surfaces as [store.ErrLoginAlreadyExists].
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login looks the account up by login and compares the bcrypt hash.
// An unknown login and a wrong password both yield [ErrWrongPassword].
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", user.Login).Msg("login for unknown account")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Warn().Int64("account_id", foundUser.AccountID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the account id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates signature, expiry and issuer. Any failure is
// normalised to [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
