// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("fit-keeper", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.AccountID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "fit-keeper", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("iss", 456, 5*time.Minute, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("iss", 1, -time.Second, "key")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(valid.SignedString, "key", "iss")
		require.NoError(t, err)
		assert.Equal(t, int64(456), parsed.AccountID)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "other", "iss")
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "key", "fake")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(expired.SignedString, "key", "iss")
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}

func TestParseAccountIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("iss", 77, time.Hour, "key")
	require.NoError(t, err)

	id, err := ParseAccountIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	_, err = ParseAccountIDFromJWT("garbage")
	assert.Error(t, err)
}
