package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"notekeeper-be/internal/pkg/serverutils"

	"github.com/redis/go-redis/v9"
)

type RedisNoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisNoteCache(rdb *redis.Client, ttl time.Duration) NoteCache {
	return &RedisNoteCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *RedisNoteCache) Get(ctx context.Context, userId uint) ([]NoteProjection, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(userId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, serverutils.NewCacheError(err)
	}

	var notes []NoteProjection
	if err := json.Unmarshal(raw, &notes); err != nil {
		// A corrupt entry is as good as a miss; drop it so the next read rebuilds.
		c.rdb.Del(ctx, Key(userId))
		return nil, false, serverutils.NewCacheError(err)
	}
	return notes, true, nil
}

func (c *RedisNoteCache) Save(ctx context.Context, userId uint, notes []NoteProjection) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return serverutils.NewCacheError(err)
	}
	if err := c.rdb.Set(ctx, Key(userId), raw, c.ttl).Err(); err != nil {
		return serverutils.NewCacheError(err)
	}
	return nil
}

func (c *RedisNoteCache) Delete(ctx context.Context, userId uint) error {
	if err := c.rdb.Del(ctx, Key(userId)).Err(); err != nil {
		return serverutils.NewCacheError(err)
	}
	return nil
}
