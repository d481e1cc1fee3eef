// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package security implements the credential primitives of the notes
// service: bcrypt password hashing and signed, time-limited session tokens.
//
// Both types are immutable after construction and safe for concurrent use.
// Neither holds a lock, so an expensive bcrypt call on one request never
// delays another.
package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// PasswordHasher hashes and verifies account passwords with bcrypt.
type PasswordHasher struct {
	cost int

	// dummyHash is compared against when an account does not exist, so
	// both login failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewPasswordHasher returns a hasher using the given bcrypt cost. Costs
// outside bcrypt's accepted range fall back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-account-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return &PasswordHasher{cost: cost, dummyHash: dummy}, nil
}

// Cost returns the bcrypt cost used for new hashes.
func (p *PasswordHasher) Cost() int {
	return p.cost
}

// Hash returns the salted bcrypt hash of password.
func (p *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches hash. The comparison is
// constant-time. A mismatch is (false, nil); a corrupt hash is an error.
func (p *PasswordHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password with hash: %w", err)
}

// VerifyDummy burns one bcrypt comparison against an internal hash and
// always reports a mismatch. Call it when the account does not exist.
func (p *PasswordHasher) VerifyDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(p.dummyHash, []byte(password))
	return false
}
