package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials, and issues and
// verifies session tokens.
type AuthService interface {
	// Register creates an account for the normalised email. Fails with
	// ErrValidation (wrapped) or ErrDuplicateAccount.
	Register(ctx context.Context, email, password string) (models.Account, error)

	// Login returns the account whose password matches. Unknown email and
	// wrong password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken verifies a bearer token. Every failure is reported as
	// ErrUnauthenticated wrapping the security error.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages notes on behalf of the account identified by ownerID.
// A note owned by another account is reported as ErrNoteNotFound.
type NoteService interface {
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, ownerID string, request models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
