package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	AccountRepository AccountRepository
	NoteRepository    NoteRepository

	db *DB
}

// NewStorages wires the server repositories. With an empty DSN accounts and
// notes live in memory and are lost on restart; otherwise it connects to
// PostgreSQL and applies the embedded migrations first.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Warn().Msg("no database configured, using in-memory storage")
		return &Storages{
			AccountRepository: NewMemoryAccountRepository(),
			NoteRepository:    NewMemoryNoteRepository(),
		}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		NoteRepository:    NewNoteRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
