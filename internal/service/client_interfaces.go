package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration and
// for the locally persisted session.
type ClientAuthService interface {
	// Register creates an account on the server. It does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Login authenticates against the server, stores the returned token
	// together with its expiry, and attaches it to subsequent requests.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout forgets the local session. The token itself stays valid on the
	// server until it expires.
	Logout(ctx context.Context) error

	// CurrentSession restores the stored session and attaches its token.
	// Returns ErrNotLoggedIn when there is none and ErrSessionExpired (after
	// clearing it) when its expiry has passed.
	CurrentSession(ctx context.Context) (models.Session, error)
}

// ClientNoteService defines the client-side note operations. Each call
// requires a current session.
type ClientNoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, noteID string) (models.Note, error)
	Create(ctx context.Context, request models.CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, noteID string) error
}

// ClientInfoService reports information about the server the client talks to.
type ClientInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
