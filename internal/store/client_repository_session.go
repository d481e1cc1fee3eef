package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sessionRepository is the SQLite-backed [SessionRepository]. The session
// table holds at most one row.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, upsertSession,
		session.Email, session.Token, session.ExpiresAt.UTC(), session.CreatedAt.UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx, selectSession).Scan(&s.Email, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
