package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the Credential Store. Emails passed in are expected
// to be normalised by the caller.
type AccountRepository interface {
	// CreateAccount inserts account and returns it as stored.
	// Returns [ErrEmailAlreadyExists] if the email is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail returns [ErrAccountNotFound] if no account matches.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
}

// NoteRepository stores notes. Every single-record method takes the owner
// ID and matches on (id, owner_id); a mismatch is [ErrNoteNotFound].
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}
