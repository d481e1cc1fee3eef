// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgAccountAlreadyExists:
			return ErrDuplicateAccount
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgInvalidEmail:
			return ErrInvalidEmail
		case app.MsgEmptyPassword:
			return ErrEmptyPassword
		case app.MsgPasswordTooLong:
			return ErrPasswordTooLong
		case app.MsgEmptyTitle:
			return ErrEmptyTitle
		case app.MsgEmptyContent:
			return ErrEmptyContent
		case app.MsgNothingToUpdate:
			return ErrNothingToUpdate
		}
		return errors.Join(ErrValidation, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrUnauthenticated

	case errors.Is(err, adapter.ErrNotFound):
		return ErrNoteNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
