package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/service"
)

var (
	errUnknownCommand    = errors.New("unknown command")
	errUsage             = errors.New("usage")
	errUnterminatedQuote = errors.New("unterminated quote or escape")
)

// usageError reports wrong arguments to a command.
func usageError(usage string) error {
	return fmt.Errorf("%w: %s", errUsage, usage)
}

// userMessage turns a command error into a line for the terminal.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return "you are not logged in, run `login` first"
	case errors.Is(err, service.ErrSessionExpired):
		return "your session has expired, please log in again"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, service.ErrDuplicateAccount):
		return "an account with this email already exists"
	case errors.Is(err, service.ErrNoteNotFound):
		return "note not found"
	case errors.Is(err, service.ErrEmptyTitle):
		return "title must not be empty"
	case errors.Is(err, service.ErrEmptyContent):
		return "content must not be empty"
	case errors.Is(err, service.ErrNothingToUpdate):
		return "nothing to update, pass -title, -content or -pinned"
	case errors.Is(err, service.ErrInvalidEmail):
		return "invalid email address"
	case errors.Is(err, service.ErrEmptyPassword):
		return "password must not be empty"
	case errors.Is(err, service.ErrPasswordTooLong):
		return "password is too long"
	}
	return err.Error()
}
