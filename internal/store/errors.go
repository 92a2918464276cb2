// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no signed-in session is stored
	// locally.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrPreferencesNotFound is returned when neither the local config table
	// nor the replicated store holds preferences for the account.
	ErrPreferencesNotFound = errors.New("preferences were not found")

	// ErrProfileNotFound is returned when the account has no profile
	// document yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrDayNotFound is returned when no day record matches a natural key.
	ErrDayNotFound = errors.New("workout day was not found")

	// ErrSplitNotFound is returned when no split matches a name.
	ErrSplitNotFound = errors.New("split was not found")

	// ErrPublicRecordNotFound is returned when a public record identifier
	// does not exist.
	ErrPublicRecordNotFound = errors.New("public record was not found")

	// ErrRevisionConflict is returned when a conditional preference write
	// carries a base revision that no longer matches the stored one.
	ErrRevisionConflict = errors.New("preference revision conflict occurred")

	// ErrDayAlreadyExists is returned when a day with the same natural key
	// is already stored locally.
	ErrDayAlreadyExists = errors.New("workout day already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingPayload = errors.New("failed to encode json column")
)
