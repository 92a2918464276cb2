// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fit-keeper/internal/app"
	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/service"
	"github.com/MKhiriev/go-fit-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the account identifier in
// the request context under [utils.AccountIDCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token has expired or cannot be parsed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("token expired or invalid")
				http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
