package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryNoteCache is an in-process driver backed by go-cache. Lists are
// copied on both Save and Get so callers can never mutate a cached snapshot
// in place, matching the read-modify-write contract of the Redis driver.
type MemoryNoteCache struct {
	store *gocache.Cache
}

func NewMemoryNoteCache(ttl time.Duration) NoteCache {
	return &MemoryNoteCache{
		store: gocache.New(ttl, 10*time.Minute),
	}
}

func (c *MemoryNoteCache) Get(ctx context.Context, userId uint) ([]NoteProjection, bool, error) {
	raw, found := c.store.Get(Key(userId))
	if !found {
		return nil, false, nil
	}
	notes, ok := raw.([]NoteProjection)
	if !ok {
		c.store.Delete(Key(userId))
		return nil, false, nil
	}
	return copyProjections(notes), true, nil
}

func (c *MemoryNoteCache) Save(ctx context.Context, userId uint, notes []NoteProjection) error {
	c.store.Set(Key(userId), copyProjections(notes), gocache.DefaultExpiration)
	return nil
}

func (c *MemoryNoteCache) Delete(ctx context.Context, userId uint) error {
	c.store.Delete(Key(userId))
	return nil
}

func copyProjections(notes []NoteProjection) []NoteProjection {
	copied := make([]NoteProjection, len(notes))
	for i, n := range notes {
		copied[i] = n
		copied[i].LabelIds = append([]uint(nil), n.LabelIds...)
		copied[i].Collaborators = append([]CollaboratorProjection(nil), n.Collaborators...)
	}
	return copied
}
