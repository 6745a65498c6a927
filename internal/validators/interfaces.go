// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted forms before any flow touches storage
// or a password hash.
//
// A Validator runs a list of named rules against a request value. Callers
// may pass rule names to run only a subset, in the given order; the first
// failing rule's sentinel error is returned so that the service layer can
// map it to a user-facing message.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {
	// Validate checks obj, optionally restricted to the named rules.
	Validate(ctx context.Context, obj any, rules ...string) error
}
