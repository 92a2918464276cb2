// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/config"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
	"github.com/MKhiriev/go-fit-keeper/models"
)

const testHashKey = "integrity"

func newTestTransport(t *testing.T, address string, failures uint32) *Transport {
	t.Helper()

	tr, err := NewTransport(config.ClientAdapter{
		HTTPAddress:     address,
		RequestTimeout:  2 * time.Second,
		BreakerFailures: failures,
		BreakerTimeout:  time.Minute,
	}, config.ClientApp{HashKey: testHashKey}, logger.Nop())
	require.NoError(t, err)
	return tr
}

func testToken(t *testing.T, accountID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("go-fit-keeper", accountID, time.Hour, "secret")
	require.NoError(t, err)
	return token.SignedString
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://fit.example.com/", want: "https://fit.example.com"},
		{name: "whitespace", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTransport_InvalidAddress(t *testing.T) {
	_, err := NewTransport(config.ClientAdapter{HTTPAddress: ""}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestTransport_SetToken(t *testing.T) {
	tr := newTestTransport(t, "localhost:1", 5)

	assert.Empty(t, tr.Token())
	tr.SetToken("  abc  ")
	assert.Equal(t, "abc", tr.Token())
}

func TestTransport_Login(t *testing.T) {
	token := testToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, "pw", user.Password)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, 5)
	session, err := tr.Login(context.Background(), models.User{Login: "alice", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), session.AccountID)
	assert.Equal(t, "alice", session.Login)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, token, tr.Token())
	assert.False(t, session.SignedAt.IsZero())
}

func TestTransport_Register_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		http.Error(w, "login taken", http.StatusConflict)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, 5)
	_, err := tr.Register(context.Background(), models.User{Login: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, tr.Token())
}

func TestTransport_Login_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, 5)
	_, err := tr.Login(context.Background(), models.User{Login: "alice", Password: "pw"})
	assert.Error(t, err)
	assert.Empty(t, tr.Token())
}

func TestTransport_BreakerOpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, 2)
	tr.SetToken(testToken(t, 1))
	store := NewHTTPRemoteStore(tr)

	_, err := store.FetchDaySnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternalServerError)
	_, err = store.FetchDaySnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternalServerError)

	assert.True(t, tr.BreakerOpen())

	_, err = store.FetchDaySnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, int32(2), hits.Load())
	assert.False(t, store.IsAvailable(context.Background()))
}

func TestTransport_ClientErrorsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, 1)
	tr.SetToken(testToken(t, 1))
	prefs := NewHTTPPreferenceStore(tr)

	for i := 0; i < 3; i++ {
		_, err := prefs.Fetch(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.False(t, tr.BreakerOpen())
}

func TestTransport_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	tr := newTestTransport(t, address, 5)
	tr.SetToken(testToken(t, 1))

	_, err := NewHTTPRemoteStore(tr).FetchSplitSnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}
