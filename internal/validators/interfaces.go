// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks input arriving from client contexts before it
// reaches the remote service.
//
// A [Validator] validates one value, optionally scoped to a subset of named
// fields. [BookmarkValidator] covers bookmarks submitted for saving.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Unsupported value types yield [ErrUnsupportedType].
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
