package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	accountsTable = models.Account{}.TableName()
	notesTable    = models.Note{}.TableName()

	accountColumns = []string{"id", "email", "password_hash", "created_at"}
	noteColumns    = []string{"id", "owner_id", "title", "content", "pinned", "created_at", "updated_at"}
)

// ownedNote is the (id, owner_id) predicate every single-note statement
// filters on.
func ownedNote(ownerID, noteID string) sq.Eq {
	return sq.Eq{"id": noteID, "owner_id": ownerID}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	query, args, err := psql.
		Insert(accountsTable).
		Columns("id", "email", "password_hash").
		Values(account.ID, account.Email, account.PasswordHash).
		Suffix(returning(accountColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindAccountByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.
		Insert(notesTable).
		Columns("id", "owner_id", "title", "content", "pinned").
		Values(note.ID, note.OwnerID, note.Title, note.Content, note.Pinned).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListNotesQuery orders pinned notes first, then most recently updated,
// then by creation order so the result is deterministic.
func buildListNotesQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("pinned DESC", "updated_at DESC", "created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetNoteQuery(ownerID, noteID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(notesTable).
		Where(ownedNote(ownerID, noteID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateNoteQuery sets only the non-nil fields of update and always
// refreshes updated_at.
func buildUpdateNoteQuery(ownerID, noteID string, update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update(notesTable)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Pinned != nil {
		builder = builder.Set("pinned", *update.Pinned)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(ownedNote(ownerID, noteID)).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(ownerID, noteID string) (string, []any, error) {
	query, args, err := psql.
		Delete(notesTable).
		Where(ownedNote(ownerID, noteID)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
