// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/mock"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func TestClientAuthService_Login(t *testing.T) {
	user := models.User{Login: "rasul", Password: "secret"}
	session := models.Session{AccountID: 7, Login: "rasul", Token: "jwt", SignedAt: testEpoch}

	tests := []struct {
		name    string
		prepare func(auth *mock.MockAuthenticator, sessions *mock.MockLocalSessionRepository)
		wantErr error
	}{
		{
			name: "session persisted",
			prepare: func(auth *mock.MockAuthenticator, sessions *mock.MockLocalSessionRepository) {
				auth.EXPECT().Login(gomock.Any(), user).Return(session, nil)
				sessions.EXPECT().SaveSession(gomock.Any(), session).Return(nil)
			},
		},
		{
			name: "persist failure does not undo sign-in",
			prepare: func(auth *mock.MockAuthenticator, sessions *mock.MockLocalSessionRepository) {
				auth.EXPECT().Login(gomock.Any(), user).Return(session, nil)
				sessions.EXPECT().SaveSession(gomock.Any(), session).Return(errors.New("disk full"))
			},
		},
		{
			name: "server rejects credentials",
			prepare: func(auth *mock.MockAuthenticator, _ *mock.MockLocalSessionRepository) {
				auth.EXPECT().Login(gomock.Any(), user).Return(models.Session{}, adapter.ErrUnauthorized)
			},
			wantErr: ErrLoginOnServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthenticator(ctrl)
			sessions := mock.NewMockLocalSessionRepository(ctrl)
			tt.prepare(auth, sessions)

			got, err := NewClientAuthService(auth, sessions, logger.Nop()).Login(context.Background(), user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, session, got)
		})
	}
}

func TestClientAuthService_RegisterWrapsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthenticator(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Session{}, adapter.ErrConflict)

	_, err := NewClientAuthService(auth, sessions, logger.Nop()).Register(context.Background(), models.User{Login: "taken"})

	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientAuthService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthenticator(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)
	svc := NewClientAuthService(auth, sessions, logger.Nop())

	sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)
	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)

	stored := models.Session{AccountID: 7, Login: "rasul", Token: "jwt"}
	sessions.EXPECT().LoadSession(gomock.Any()).Return(stored, nil)
	auth.EXPECT().SetToken("jwt")

	got, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClientAuthService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthenticator(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	gomock.InOrder(
		auth.EXPECT().SetToken(""),
		sessions.EXPECT().ClearSession(gomock.Any()).Return(nil),
	)

	assert.NoError(t, NewClientAuthService(auth, sessions, logger.Nop()).SignOut(context.Background()))
}
