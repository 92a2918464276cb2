// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the managed document database.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// AccountID is the unique identifier of the account. Every record of the
	// private partition and the replicated preference store is keyed by it.
	AccountID int64 `json:"account_id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is the plaintext password. It is only present in register
	// and login requests and is never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the signed-in state persisted by the client so that an offline
// restart can still run a local-only sync session.
type Session struct {
	AccountID int64     `json:"account_id"`
	Login     string    `json:"login"`
	Token     string    `json:"-"`
	SignedAt  time.Time `json:"signed_at"`
}
