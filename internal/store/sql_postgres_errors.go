package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement is worth retrying.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and for every
	// constraint, data or syntax error.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures and deadlocks.
	Retryable
)

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// by inspecting the SQLSTATE of a *pgconn.PgError.
type PostgresErrorClassifier struct {
	retryable map[string]struct{}
}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	codes := []string{
		// class 08
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// class 40
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// class 57
		pgerrcode.CannotConnectNow,
	}

	c := &PostgresErrorClassifier{retryable: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		c.retryable[code] = struct{}{}
	}
	return c
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if _, ok := c.retryable[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
