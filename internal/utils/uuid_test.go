package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(NewUUIDGenerator().Generate()))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("n1"))
	assert.False(t, IsValidID("not-a-uuid-at-all"))
}
