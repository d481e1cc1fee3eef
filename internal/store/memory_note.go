package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// memoryNoteRepository is an in-process [NoteRepository]. The mutex only
// guards map access; no caller work runs while it is held.
type memoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[string]models.Note
	now   func() time.Time
}

// NewMemoryNoteRepository returns an empty in-memory [NoteRepository].
func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{
		notes: make(map[string]models.Note),
		now:   time.Now,
	}
}

// ownedNote returns the note with noteID only if ownerID owns it.
// Callers must hold r.mu.
func (r *memoryNoteRepository) ownedNote(ownerID, noteID string) (models.Note, bool) {
	note, ok := r.notes[noteID]
	if !ok || note.OwnerID != ownerID {
		return models.Note{}, false
	}
	return note, true
}

func (r *memoryNoteRepository) CreateNote(_ context.Context, note models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.ID]; exists {
		return models.Note{}, fmt.Errorf("%w: duplicate note id %s", ErrExecutingStatement, note.ID)
	}

	now := r.now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now
	r.notes[note.ID] = note

	return note, nil
}

func (r *memoryNoteRepository) ListNotes(_ context.Context, ownerID string) ([]models.Note, error) {
	r.mu.RLock()
	notes := make([]models.Note, 0, 16)
	for _, note := range r.notes {
		if note.OwnerID == ownerID {
			notes = append(notes, note)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(notes, compareNotes)
	return notes, nil
}

// compareNotes orders pinned notes first, then by updated_at descending,
// then by created_at and id ascending.
func compareNotes(a, b models.Note) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

func (r *memoryNoteRepository) GetNote(_ context.Context, ownerID, noteID string) (models.Note, error) {
	if !utils.IsValidID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.ownedNote(ownerID, noteID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}
	return note, nil
}

func (r *memoryNoteRepository) UpdateNote(_ context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if !utils.IsValidID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.ownedNote(ownerID, noteID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Pinned != nil {
		note.Pinned = *update.Pinned
	}

	// updated_at must move forward even if the clock did not.
	now := r.now().UTC()
	if !now.After(note.UpdatedAt) {
		now = note.UpdatedAt.Add(time.Microsecond)
	}
	note.UpdatedAt = now
	r.notes[noteID] = note

	return note, nil
}

func (r *memoryNoteRepository) DeleteNote(_ context.Context, ownerID, noteID string) error {
	if !utils.IsValidID(noteID) {
		return ErrNoteNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ownedNote(ownerID, noteID); !ok {
		return ErrNoteNotFound
	}
	delete(r.notes, noteID)

	return nil
}
