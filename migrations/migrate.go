// Package migrations embeds the SQL schema of the server database and of
// the client's local session file, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set to apply.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	dir, err := fs.Sub(embedMigrations, string(dialect))
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
