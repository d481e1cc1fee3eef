// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered user of the notes service.
// The password hash never leaves the server process.
type Account struct {
	// ID is the immutable account identifier (UUIDv7).
	ID string `json:"id"`

	// Email is the login identifier, always stored lowercased and trimmed.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
