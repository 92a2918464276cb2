// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
VALUES ($1, $2, $3)
RETURNING account_id, login, name, password_hash, created_at`

	findUserByLogin = `SELECT account_id, login, name, password_hash, created_at
FROM users
WHERE login = $1`

	selectProfile = `SELECT account_id, display_name, preferences, created_at, updated_at
FROM profiles
WHERE account_id = $1`

	upsertProfile = `INSERT INTO profiles (account_id, display_name, preferences)
VALUES ($1, $2, $3)
ON CONFLICT (account_id) DO UPDATE SET
    display_name = EXCLUDED.display_name,
    preferences  = EXCLUDED.preferences,
    updated_at   = NOW()
RETURNING account_id, display_name, preferences, created_at, updated_at`

	upsertPrivateDay = `INSERT INTO private_days (record_id, account_id, date_key, day_name, split_name, exercises)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (account_id, date_key, day_name) DO UPDATE SET
    split_name = EXCLUDED.split_name,
    exercises  = EXCLUDED.exercises,
    updated_at = NOW()`

	upsertPrivateSplit = `INSERT INTO private_splits (record_id, account_id, name, days)
VALUES ($1, $2, $3, $4)
ON CONFLICT (account_id, name) DO UPDATE SET
    days       = EXCLUDED.days,
    updated_at = NOW()`

	selectPreferenceDocument = `SELECT preferences, revision
FROM preference_documents
WHERE account_id = $1`

	selectPreferenceRevision = `SELECT COALESCE(MAX(revision), 0)
FROM preference_documents
WHERE account_id = $1`

	// the conditional update skips the row when the base revision is stale,
	// so RETURNING yields nothing
	putPreferenceDocument = `INSERT INTO preference_documents (account_id, preferences, revision)
VALUES ($1, $2, 1)
ON CONFLICT (account_id) DO UPDATE SET
    preferences = EXCLUDED.preferences,
    revision    = preference_documents.revision + 1,
    updated_at  = NOW()
WHERE $3::BIGINT = 0 OR preference_documents.revision = $3::BIGINT
RETURNING revision`

	insertPublicRecord = `INSERT INTO public_records (record_id, owner_account_id, payload)
VALUES ($1, $2, $3)`

	selectPublicRecord = `SELECT payload FROM public_records WHERE record_id = $1`
)

// buildSelectPrivateDaysQuery lists the day records of an account ordered by
// natural key.
func buildSelectPrivateDaysQuery(accountID int64) (string, []any, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("record_id", "account_id", "date_key", "day_name", "split_name", "exercises", "updated_at").
		From("private_days").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("date_key", "day_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPrivateSplitsQuery lists the split records of an account.
func buildSelectPrivateSplitsQuery(accountID int64) (string, []any, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("record_id", "account_id", "name", "days", "updated_at").
		From("private_splits").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
