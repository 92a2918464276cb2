// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks workout records, splits and preference documents
// before the server stores them.
//
// A [Validator] accepts any supported model and an optional list of field
// names; when fields are given only those are checked, otherwise a default
// set for the model is used.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
