package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNoteNotFound       = errors.New("note not found")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrValidation is the parent of every input validation failure; the
// specific errors below wrap it.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidEmail    = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrEmptyPassword   = fmt.Errorf("%w: empty password", ErrValidation)
	ErrPasswordTooLong = fmt.Errorf("%w: password is too long", ErrValidation)
	ErrEmptyTitle      = fmt.Errorf("%w: empty title", ErrValidation)
	ErrEmptyContent    = fmt.Errorf("%w: empty content", ErrValidation)
	ErrNothingToUpdate = fmt.Errorf("%w: no fields to update", ErrValidation)
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
