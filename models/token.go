// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. AccountID is a cached, parsed copy of the "sub"
// claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AccountID is the owner identifier extracted from the "sub" claim.
	AccountID int64 `json:"-"`
}

// GetAccountID parses the "sub" claim as a base-10 int64.
func (t *Token) GetAccountID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
