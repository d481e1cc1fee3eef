// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-note-keeper server handlers and by the client when it interprets
// server responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// on both sides of the API.
package app

const (
	// MsgAPIRunning is the body of the health endpoint.
	MsgAPIRunning = "Notes API is running"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmail is returned when an email is empty or not an address.
	MsgInvalidEmail = "invalid email address"

	// MsgEmptyPassword is returned when a registration carries no password.
	MsgEmptyPassword = "password must not be empty"

	// MsgPasswordTooLong is returned for passwords bcrypt cannot hash.
	MsgPasswordTooLong = "password must be at most 72 bytes"

	MsgEmptyTitle      = "title must not be empty"
	MsgEmptyContent    = "content must not be empty"
	MsgNothingToUpdate = "no fields to update"

	// MsgAccountAlreadyExists is returned when a registration is rejected
	// because the email is already in use.
	MsgAccountAlreadyExists = "account already exists"

	// MsgAccountCreated confirms a registration.
	MsgAccountCreated = "account created"

	// MsgInvalidCredentials is the single login failure message. Unknown
	// email and wrong password are indistinguishable.
	MsgInvalidCredentials = "invalid email or password"

	// MsgUnauthenticated is returned when the Authorization header is
	// missing or is not a single bearer token.
	MsgUnauthenticated = "authentication required"

	// MsgInvalidToken is returned for every token verification failure.
	MsgInvalidToken = "invalid or expired token"

	// MsgNoteNotFound is returned when a note does not exist or belongs to
	// another account.
	MsgNoteNotFound = "note not found"

	// MsgNoteDeleted confirms a delete.
	MsgNoteDeleted = "note deleted"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
