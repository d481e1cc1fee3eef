package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts the account and returns it with the database
// assigned created_at.
//
// Error handling:
//   - unique_violation (23505) on email → [ErrEmailAlreadyExists];
//   - anything else → wrapped [ErrExecutingStatement].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, err
	}

	var created models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*accountRepository.CreateAccount").Msg("email already registered")
			return models.Account{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*accountRepository.CreateAccount").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindAccountByEmail looks up an account by its normalised email.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("failed to build query")
		return models.Account{}, err
	}

	var found models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).
			Str("func", "*accountRepository.FindAccountByEmail").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to query account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
