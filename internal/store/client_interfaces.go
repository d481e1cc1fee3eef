package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the bearer token of the currently logged-in
// account on the client device. There is at most one session at a time.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns [ErrSessionNotFound] when nobody is logged in.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession is a no-op when there is no session.
	DeleteSession(ctx context.Context) error
}
