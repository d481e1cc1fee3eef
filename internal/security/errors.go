// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import "errors"

// Token verification failures. [TokenManager.Verify] returns exactly one of
// them (possibly wrapped); callers match with [errors.Is].
var (
	// ErrMalformedToken is returned when the token cannot be parsed: wrong
	// number of segments, invalid base64 or JSON, missing subject, or claims
	// that do not belong to this issuer.
	ErrMalformedToken = errors.New("malformed token")

	// ErrBadSignature is returned when the signature does not match the
	// header and payload, or the token names an unexpected algorithm.
	ErrBadSignature = errors.New("bad token signature")

	// ErrTokenExpired is returned when the current time is at or after the
	// token's expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// Password hashing failures.
var (
	// ErrEmptyPassword is returned when an empty password is hashed.
	ErrEmptyPassword = errors.New("empty password")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash
	// (longer than 72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrHashingFailed wraps any other bcrypt failure.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrEmptySignKey is returned by [NewTokenManager] when no signing key is
	// configured.
	ErrEmptySignKey = errors.New("empty token sign key")
)
