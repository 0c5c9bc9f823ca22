// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the superficial shape checks applied to users
// and books before they reach the store.
//
// A Validator accepts a model by value or by pointer and an optional list of
// field names. With no fields every default rule for the type runs; with
// fields only those rules run, in the given order, and the first failure is
// returned.
package validators

import "context"

// Validator validates a model, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
