package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/telemetry"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"go.opentelemetry.io/otel/attribute"
)

// noteService passes note operations to the repository with the owner
// taken from the caller, never from input. It performs no validation; see
// [NoteValidationService].
type noteService struct {
	noteRepository store.NoteRepository
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// mapNoteError translates store errors into service errors.
func mapNoteError(err error) error {
	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	return err
}

func (n *noteService) ListNotes(ctx context.Context, ownerID string) (notes []models.Note, err error) {
	ctx, span := telemetry.StartSpan(ctx, "NoteService.ListNotes")
	defer func() { telemetry.EndSpan(span, err) }()

	notes, err = n.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	span.SetAttributes(attribute.Int("notes.count", len(notes)))

	return notes, nil
}

func (n *noteService) GetNote(ctx context.Context, ownerID, noteID string) (note models.Note, err error) {
	ctx, span := telemetry.StartSpan(ctx, "NoteService.GetNote")
	defer func() { telemetry.EndSpan(span, err) }()

	note, err = n.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, mapNoteError(err)
	}

	return note, nil
}

func (n *noteService) CreateNote(ctx context.Context, ownerID string, request models.CreateNoteRequest) (note models.Note, err error) {
	ctx, span := telemetry.StartSpan(ctx, "NoteService.CreateNote")
	defer func() { telemetry.EndSpan(span, err) }()

	note, err = n.noteRepository.CreateNote(ctx, models.Note{
		ID:      n.ids.Generate(),
		Title:   request.Title,
		Content: request.Content,
		Pinned:  request.Pinned,
		OwnerID: ownerID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.CreateNote").Msg("note creation failed")
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (n *noteService) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (note models.Note, err error) {
	ctx, span := telemetry.StartSpan(ctx, "NoteService.UpdateNote")
	defer func() { telemetry.EndSpan(span, err) }()

	note, err = n.noteRepository.UpdateNote(ctx, ownerID, noteID, update)
	if err != nil {
		return models.Note{}, mapNoteError(err)
	}

	return note, nil
}

func (n *noteService) DeleteNote(ctx context.Context, ownerID, noteID string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "NoteService.DeleteNote")
	defer func() { telemetry.EndSpan(span, err) }()

	if err = n.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return mapNoteError(err)
	}

	return nil
}
