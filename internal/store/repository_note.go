package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Each method is a single statement, so ownership is
// checked and applied atomically.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.Pinned, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	created, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("owner_id", note.OwnerID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListNotes returns every note of ownerID, pinned first, most recently
// updated next. An owner without notes gets an empty, non-nil slice.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Str("owner_id", ownerID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Str("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildGetNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Note{}, r.singleNoteError(ctx, "*noteRepository.GetNote", noteID, err)
	}

	return note, nil
}

// UpdateNote applies update to the note only if ownerID owns it, in one
// UPDATE ... RETURNING statement.
func (r *noteRepository) UpdateNote(ctx context.Context, ownerID, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildUpdateNoteQuery(ownerID, noteID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Note{}, r.singleNoteError(ctx, "*noteRepository.UpdateNote", noteID, err)
	}

	return note, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(noteID) {
		return ErrNoteNotFound
	}

	query, args, err := buildDeleteNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Str("note_id", noteID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// singleNoteError turns sql.ErrNoRows into [ErrNoteNotFound] and wraps
// everything else.
func (r *noteRepository) singleNoteError(ctx context.Context, fn, noteID string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoteNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("note_id", noteID).
		Bool("retryable", r.retryable(err)).
		Msg("note statement failed")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
