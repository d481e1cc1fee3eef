// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input rules for the notes domain.
//
// A Validator checks a value and may be limited to a subset of named fields.
// Services call it before reaching storage, so handlers and repositories
// can assume note titles and contents are present.
package validators

import "context"

// Validator checks a value. When field names are given, only those fields
// are checked; an unknown name is an error.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
