// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client and
// the server: context keys, a replaceable clock, JSON response writing, the
// resty-based HTTP client, JWT handling, HMAC hashing and identifier
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account
// identifier in the request context.
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the account identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}
