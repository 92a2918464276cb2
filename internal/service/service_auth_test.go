// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/mock"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-fit-keeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, users
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "rasul", u.Login)
		assert.Empty(t, u.Password, "plaintext never reaches the repository")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
		u.AccountID = 7
		return u, nil
	})

	got, err := svc.RegisterUser(context.Background(), models.User{Login: " rasul ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.AccountID)
}

func TestAuthService_RegisterUser_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for _, user := range []models.User{{Login: "", Password: "x"}, {Login: "rasul"}, {Login: "  ", Password: "x"}} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, users := newTestAuthService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "rasul", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{AccountID: 7, Login: "rasul", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "correct password", password: "secret", found: stored},
		{name: "wrong password", password: "guess", found: stored, wantErr: ErrWrongPassword},
		{name: "unknown login", password: "secret", findErr: store.ErrNoUserWasFound, wantErr: ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthService(t)
			users.EXPECT().FindUserByLogin(gomock.Any(), "rasul").Return(tt.found, tt.findErr)

			got, err := svc.Login(context.Background(), models.User{Login: "rasul", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.AccountID)
			assert.Empty(t, got.PasswordHash)
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{AccountID: 7})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.AccountID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
