// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the notes API.
//
// [ServerAdapter] decouples the client services from the REST protocol.
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the notes API on behalf of one client.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every note request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Login exchanges credentials for a session token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, request models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
