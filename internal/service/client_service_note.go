package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	auth    ClientAuthService
	adapter adapter.ServerAdapter
}

func NewClientNoteService(auth ClientAuthService, serverAdapter adapter.ServerAdapter) ClientNoteService {
	return &clientNoteService{auth: auth, adapter: serverAdapter}
}

// call restores the session, runs fn and translates its error. A 401 from
// the server means the token is no longer accepted, so the local session is
// dropped as well.
func (n *clientNoteService) call(ctx context.Context, fn func() error) error {
	if _, err := n.auth.CurrentSession(ctx); err != nil {
		return err
	}

	err := mapAdapterError(fn())
	if errors.Is(err, ErrUnauthenticated) {
		_ = n.auth.Logout(ctx)
		return ErrSessionExpired
	}

	return err
}

func (n *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := n.call(ctx, func() (err error) {
		notes, err = n.adapter.ListNotes(ctx)
		return err
	})
	return notes, err
}

func (n *clientNoteService) Get(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note
	err := n.call(ctx, func() (err error) {
		note, err = n.adapter.GetNote(ctx, noteID)
		return err
	})
	return note, err
}

func (n *clientNoteService) Create(ctx context.Context, request models.CreateNoteRequest) (models.Note, error) {
	var note models.Note
	err := n.call(ctx, func() (err error) {
		note, err = n.adapter.CreateNote(ctx, request)
		return err
	})
	return note, err
}

func (n *clientNoteService) Update(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note
	err := n.call(ctx, func() (err error) {
		note, err = n.adapter.UpdateNote(ctx, noteID, update)
		return err
	})
	return note, err
}

func (n *clientNoteService) Delete(ctx context.Context, noteID string) error {
	return n.call(ctx, func() error {
		return n.adapter.DeleteNote(ctx, noteID)
	})
}
