package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMemoryAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	created, err := repo.CreateAccount(ctx, models.Account{ID: testOwner, Email: "alice@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.CreateAccount(ctx, models.Account{ID: otherOwner, Email: "alice@example.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindAccountByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, testOwner, found.ID)

	_, err = repo.FindAccountByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()
	gen := utils.NewUUIDGenerator()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateAccount(ctx, models.Account{ID: gen.Generate(), Email: "same@example.com"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryNoteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryNoteRepository()

	created, err := repo.CreateNote(ctx, models.Note{ID: testNote, OwnerID: testOwner, Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetNote(ctx, testOwner, testNote)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	content := "changed"
	updated, err := repo.UpdateNote(ctx, testOwner, testNote, models.NoteUpdate{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "t", updated.Title)
	assert.Equal(t, "changed", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.DeleteNote(ctx, testOwner, testNote))
	_, err = repo.GetNote(ctx, testOwner, testNote)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, repo.DeleteNote(ctx, testOwner, testNote), ErrNoteNotFound)
}

func TestMemoryNoteRepository_UpdatedAtMovesForwardOnFrozenClock(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &memoryNoteRepository{notes: map[string]models.Note{}, now: func() time.Time { return frozen }}

	created, err := repo.CreateNote(ctx, models.Note{ID: testNote, OwnerID: testOwner, Title: "t", Content: "c"})
	require.NoError(t, err)

	pinned := true
	updated, err := repo.UpdateNote(ctx, testOwner, testNote, models.NoteUpdate{Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestMemoryNoteRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo := &memoryNoteRepository{notes: map[string]models.Note{}, now: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}}

	ids := []string{
		"0190a5b4-7000-7000-8000-00000000000a",
		"0190a5b4-7000-7000-8000-00000000000b",
		"0190a5b4-7000-7000-8000-00000000000c",
	}
	for i, id := range ids {
		_, err := repo.CreateNote(ctx, models.Note{ID: id, OwnerID: testOwner, Title: fmt.Sprint(i), Content: "c"})
		require.NoError(t, err)
	}

	// touch the first note, pin the second
	content := "edited"
	_, err := repo.UpdateNote(ctx, testOwner, ids[0], models.NoteUpdate{Content: &content})
	require.NoError(t, err)
	pinned := true
	_, err = repo.UpdateNote(ctx, testOwner, ids[1], models.NoteUpdate{Pinned: &pinned})
	require.NoError(t, err)

	notes, err := repo.ListNotes(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, ids[1], notes[0].ID, "pinned first")
	assert.Equal(t, ids[0], notes[1].ID, "then most recently updated")
	assert.Equal(t, ids[2], notes[2].ID)
}

func TestCompareNotes_TieBreaks(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := models.Note{ID: "a", CreatedAt: at, UpdatedAt: at}
	b := models.Note{ID: "b", CreatedAt: at, UpdatedAt: at}
	older := models.Note{ID: "z", CreatedAt: at.Add(-time.Second), UpdatedAt: at}

	assert.Negative(t, compareNotes(a, b))
	assert.Positive(t, compareNotes(b, a))
	assert.Negative(t, compareNotes(older, a), "earlier creation wins a tie on updated_at")
	assert.Zero(t, compareNotes(a, a))
}

// No sequence of operations lets one owner read, change or delete another
// owner's notes, and a list only ever contains the caller's own notes.
func TestMemoryNoteRepository_OwnershipProperty(t *testing.T) {
	owners := []string{testOwner, otherOwner, "0190a5b4-6c1e-7d2f-8a3b-000000000003"}

	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		repo := NewMemoryNoteRepository()
		gen := utils.NewUUIDGenerator()
		owned := map[string]string{} // note id -> owner

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for range steps {
			caller := rapid.SampledFrom(owners).Draw(rt, "caller")

			var target string
			if len(owned) > 0 && rapid.Bool().Draw(rt, "existing") {
				keys := make([]string, 0, len(owned))
				for id := range owned {
					keys = append(keys, id)
				}
				target = rapid.SampledFrom(keys).Draw(rt, "target")
			} else {
				target = gen.Generate()
			}
			isOwner := owned[target] == caller

			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				id := gen.Generate()
				_, err := repo.CreateNote(ctx, models.Note{ID: id, OwnerID: caller, Title: "t", Content: "c"})
				if err != nil {
					rt.Fatalf("create: %v", err)
				}
				owned[id] = caller
			case 1:
				_, err := repo.GetNote(ctx, caller, target)
				if isOwner != (err == nil) {
					rt.Fatalf("get by %s of %s: owner=%v err=%v", caller, target, isOwner, err)
				}
			case 2:
				title := "changed"
				_, err := repo.UpdateNote(ctx, caller, target, models.NoteUpdate{Title: &title})
				if isOwner != (err == nil) {
					rt.Fatalf("update by %s of %s: owner=%v err=%v", caller, target, isOwner, err)
				}
			case 3:
				err := repo.DeleteNote(ctx, caller, target)
				if isOwner != (err == nil) {
					rt.Fatalf("delete by %s of %s: owner=%v err=%v", caller, target, isOwner, err)
				}
				if isOwner {
					delete(owned, target)
				}
			}

			for _, owner := range owners {
				notes, err := repo.ListNotes(ctx, owner)
				if err != nil {
					rt.Fatalf("list: %v", err)
				}
				want := 0
				for _, o := range owned {
					if o == owner {
						want++
					}
				}
				if len(notes) != want {
					rt.Fatalf("list for %s: got %d notes, want %d", owner, len(notes), want)
				}
				for _, n := range notes {
					if n.OwnerID != owner {
						rt.Fatalf("list for %s returned note of %s", owner, n.OwnerID)
					}
				}
			}
		}
	})
}
