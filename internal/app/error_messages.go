// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-fit-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgInvalidDataProvided is returned when the decoded request fails
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountIDProvided is returned when a handler requires the account
	// ID from the JWT claim but none is present in the request context.
	MsgNoAccountIDProvided = "no account ID was given"

	// MsgIntegrityCheckFailed is returned when the HMAC of an upload does
	// not match its payload.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// Msg*BelongsToOtherAccount are returned when the account ID inside an
	// upload differs from the authenticated account.
	MsgProfileBelongsToOtherAccount = "profile belongs to a different account"
	MsgDaysBelongToOtherAccount     = "days belong to a different account"
	MsgSplitsBelongToOtherAccount   = "splits belong to a different account"
)
