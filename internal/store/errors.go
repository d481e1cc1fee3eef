package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account with the same
	// (normalised) email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrNoteNotFound is returned when no note matches both the note ID and
	// the owner ID. A note that exists but belongs to someone else is
	// indistinguishable from a note that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrSessionNotFound is returned by the client session repository when
	// nobody is logged in on this device.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
