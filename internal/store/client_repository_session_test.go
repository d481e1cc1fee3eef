package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	s, err := NewClientStorages(context.Background(), config.ClientStorage{SessionDSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t).SessionRepository

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	now := time.Now().UTC().Truncate(time.Second)
	session := models.Session{Email: "alice@example.com", Token: "a.b.c", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.SaveSession(ctx, session))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.Token, got.Token)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	// a second login replaces the first
	session.Email = "bob@example.com"
	session.Token = "d.e.f"
	require.NoError(t, repo.SaveSession(ctx, session))
	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// deleting nothing is fine
	require.NoError(t, repo.DeleteSession(ctx))
}

func TestNewStorages_InMemoryWithoutDSN(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.AccountRepository)
	assert.NotNil(t, s.NoteRepository)
	assert.NoError(t, s.Close())
}
