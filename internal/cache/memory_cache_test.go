package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheMissOnUnknownKey(t *testing.T) {
	c := NewMemoryNoteCache(time.Hour)

	notes, hit, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, notes)
}

func TestMemoryCacheEmptyListIsAHit(t *testing.T) {
	c := NewMemoryNoteCache(time.Hour)

	require.NoError(t, c.Save(context.Background(), 1, []NoteProjection{}))

	notes, hit, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, hit, "a present-but-empty list is a hit, not a miss")
	assert.Empty(t, notes)
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryNoteCache(time.Hour)

	saved := []NoteProjection{
		{Id: 7, Title: "groceries", UserId: 1, LabelIds: []uint{3}},
	}
	require.NoError(t, c.Save(context.Background(), 1, saved))

	notes, hit, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, notes, 1)
	assert.Equal(t, saved[0], notes[0])
}

func TestMemoryCacheIsolatesCallersFromSnapshot(t *testing.T) {
	c := NewMemoryNoteCache(time.Hour)

	saved := []NoteProjection{{Id: 7, Title: "original", LabelIds: []uint{3}}}
	require.NoError(t, c.Save(context.Background(), 1, saved))

	// Mutating the fetched copy must not leak into the stored snapshot.
	first, _, _ := c.Get(context.Background(), 1)
	first[0].Title = "mutated"
	first[0].LabelIds[0] = 99

	second, _, _ := c.Get(context.Background(), 1)
	assert.Equal(t, "original", second[0].Title)
	assert.Equal(t, uint(3), second[0].LabelIds[0])
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryNoteCache(time.Hour)

	require.NoError(t, c.Save(context.Background(), 1, []NoteProjection{{Id: 7}}))
	require.NoError(t, c.Delete(context.Background(), 1))

	_, hit, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hit)

	// Deleting an absent key is a no-op.
	require.NoError(t, c.Delete(context.Background(), 2))
}

func TestKeyFormat(t *testing.T) {
	assert.Equal(t, "user_42", Key(42))
}
