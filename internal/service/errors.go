// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrValidationNoDaysProvided   = errors.New("no workout days provided")
	ErrValidationNoSplitsProvided = errors.New("no splits provided")
	ErrValidationNoAccountID      = errors.New("no account ID was given")
	ErrValidationInvalidDayKey    = errors.New("invalid day natural key")
	ErrForeignAccountData         = errors.New("data belongs to a different account")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotSignedIn      = errors.New("not signed in")

	// ErrAdvisoryTimeout reports that a remote read did not finish within
	// its advisory budget. The read itself keeps running and its result is
	// discarded.
	ErrAdvisoryTimeout = errors.New("advisory timeout elapsed")
)
