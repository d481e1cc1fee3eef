// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not
	// exactly "Bearer <token>" (scheme compared case-insensitively).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON body")
