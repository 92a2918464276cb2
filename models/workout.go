// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the layout of DayKey.DateKey.
const DateKeyLayout = "2006-01-02"

// DayKey is the natural key of a workout day: the calendar date plus the day
// identity inside a split (e.g. "2026-10-19" + "Push"). It is used to decide
// whether a remote record already exists locally without relying on
// internal record identifiers.
type DayKey struct {
	DateKey string `json:"date_key"`
	DayName string `json:"day_name"`
}

// String returns "date/name".
func (k DayKey) String() string {
	return k.DateKey + "/" + k.DayName
}

// Normalize trims whitespace so that keys coming from different devices
// compare equal.
func (k DayKey) Normalize() DayKey {
	return DayKey{DateKey: strings.TrimSpace(k.DateKey), DayName: strings.TrimSpace(k.DayName)}
}

// Valid reports whether the key has a parsable date and a non-empty name.
func (k DayKey) Valid() bool {
	if strings.TrimSpace(k.DayName) == "" {
		return false
	}
	_, err := time.Parse(DateKeyLayout, strings.TrimSpace(k.DateKey))
	return err == nil
}

// ExerciseSet is one performed set.
type ExerciseSet struct {
	Position int     `json:"position"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
}

// Exercise is an ordered entry of a workout day.
type Exercise struct {
	// ID is the local surrogate key; zero for exercises not yet stored.
	ID int64 `json:"-"`

	// DayID points to the owning local day.
	DayID int64 `json:"-"`

	Position int           `json:"position"`
	Name     string        `json:"name"`
	Sets     []ExerciseSet `json:"sets"`
}

// Split is a local training split (e.g. "Push/Pull/Legs"). Days optionally
// belong to a split.
type Split struct {
	ID           int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`
	AccountID    int64  `json:"account_id"`
	Name         string `json:"name"`

	// Days lists the day names of the split in training order.
	Days []string `json:"days,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ToSnapshot converts a local split into the remote representation.
func (s Split) ToSnapshot() SplitSnapshot {
	days := make([]string, len(s.Days))
	copy(days, s.Days)
	return SplitSnapshot{RecordID: s.ClientSideID, AccountID: s.AccountID, Name: s.Name, Days: days}
}

// DayRecord is the canonical local copy of a workout day, owned by the local
// transactional store.
type DayRecord struct {
	ID           int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`
	AccountID    int64  `json:"account_id"`

	// SplitID is the local split the day belongs to, if any.
	SplitID *int64 `json:"-"`

	// SplitName is resolved from SplitID when the record is read as a graph.
	SplitName string `json:"split_name,omitempty"`

	DateKey string `json:"date_key"`
	DayName string `json:"day_name"`

	// ContentHash is a digest of the ordered exercise graph; see HashDay.
	ContentHash string `json:"content_hash"`

	// Mirrored is true once the day was replicated to the private partition.
	Mirrored bool `json:"mirrored"`

	Exercises []Exercise `json:"exercises,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Key returns the natural key of the record.
func (d DayRecord) Key() DayKey {
	return DayKey{DateKey: d.DateKey, DayName: d.DayName}.Normalize()
}

// ExerciseSnapshot is an exercise as stored in the remote private partition.
type ExerciseSnapshot struct {
	RecordID string        `json:"record_id"`
	Position int           `json:"position"`
	Name     string        `json:"name"`
	Sets     []ExerciseSet `json:"sets"`
}

// WorkoutDaySnapshot is a day-level record as it exists in the remote private
// (or public) partition. It is read-only input for the merge; the canonical
// copy is the local DayRecord.
type WorkoutDaySnapshot struct {
	RecordID  string `json:"record_id"`
	AccountID int64  `json:"account_id"`
	DateKey   string `json:"date_key"`
	DayName   string `json:"day_name"`

	// SplitName references the parent split by its natural key. Empty when
	// the day does not belong to a split.
	SplitName string `json:"split_name,omitempty"`

	Exercises []ExerciseSnapshot `json:"exercises"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Key returns the natural key of the snapshot.
func (s WorkoutDaySnapshot) Key() DayKey {
	return DayKey{DateKey: s.DateKey, DayName: s.DayName}.Normalize()
}

// SplitSnapshot is a split record in the remote private partition.
type SplitSnapshot struct {
	RecordID  string `json:"record_id"`
	AccountID int64  `json:"account_id"`
	Name      string `json:"name"`

	// Days lists the day names of the split in training order.
	Days []string `json:"days,omitempty"`

	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RemoteSnapshot is everything the fallback fetch read from the private
// partition for one account.
type RemoteSnapshot struct {
	Splits []SplitSnapshot      `json:"splits"`
	Days   []WorkoutDaySnapshot `json:"days"`
}

// HashDay returns a stable digest of the ordered exercise graph of a day. Two
// copies of the same day produce the same hash regardless of which device
// stored them, so the hash is used to notice content drift between a remote
// snapshot and an already present local record.
func HashDay(splitName string, exercises []Exercise) string {
	h := sha256.New()
	fmt.Fprintf(h, "split=%s;", strings.TrimSpace(splitName))
	for _, e := range exercises {
		fmt.Fprintf(h, "e%d=%s[", e.Position, strings.TrimSpace(e.Name))
		for _, s := range e.Sets {
			fmt.Fprintf(h, "%d:%d:%.3f,", s.Position, s.Reps, s.WeightKg)
		}
		h.Write([]byte("];"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ToDayRecord builds the local equivalent of a remote snapshot. The split
// pointer is left empty; the caller resolves it.
func (s WorkoutDaySnapshot) ToDayRecord(accountID int64) DayRecord {
	exercises := make([]Exercise, 0, len(s.Exercises))
	for _, e := range s.Exercises {
		sets := make([]ExerciseSet, len(e.Sets))
		copy(sets, e.Sets)
		exercises = append(exercises, Exercise{Position: e.Position, Name: e.Name, Sets: sets})
	}

	key := s.Key()
	return DayRecord{
		AccountID:   accountID,
		SplitName:   strings.TrimSpace(s.SplitName),
		DateKey:     key.DateKey,
		DayName:     key.DayName,
		ContentHash: HashDay(s.SplitName, exercises),
		Mirrored:    true,
		Exercises:   exercises,
	}
}

// ToSnapshot converts a local day graph into the remote representation.
func (d DayRecord) ToSnapshot() WorkoutDaySnapshot {
	exercises := make([]ExerciseSnapshot, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		sets := make([]ExerciseSet, len(e.Sets))
		copy(sets, e.Sets)
		exercises = append(exercises, ExerciseSnapshot{Position: e.Position, Name: e.Name, Sets: sets})
	}

	return WorkoutDaySnapshot{
		RecordID:  d.ClientSideID,
		AccountID: d.AccountID,
		DateKey:   d.DateKey,
		DayName:   d.DayName,
		SplitName: d.SplitName,
		Exercises: exercises,
	}
}
