// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRemoteUnavailable covers transport failures and an open circuit
	// breaker.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrNotSignedIn is returned by authenticated calls made without a token.
	ErrNotSignedIn = errors.New("not signed in")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)
