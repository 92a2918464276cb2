// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for client-side record ids,
// public record ids and sync sessions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}

// New returns a UUIDv7, falling back to v4.
func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
