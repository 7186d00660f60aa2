// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the identifier checks used by the service layer.
//
// The package exposes two levels:
//   - IsValidCUI: the pure check-digit algorithm for Romanian company
//     identification numbers. It is total and safe for concurrent use.
//   - Validator: a generic interface that services depend on, so the
//     concrete rule set can be swapped or mocked in tests.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
