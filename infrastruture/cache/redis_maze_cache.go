package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const mazeKeyFmt = "%s:maze:%s"

// RedisMazeCache keeps encoded mazes in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, prefix string, ttlSeconds int) i.MazeCache {
	return &RedisMazeCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the cached maze or i.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	return data, err
}

// Set stores the encoded maze, replacing any previous value.
func (c *RedisMazeCache) Set(ctx context.Context, id uuid.UUID, data []byte) error {
	return c.client.Set(ctx, c.key(id), data, c.ttl).Err()
}

// Invalidate drops the cached maze. Missing keys are not an error.
func (c *RedisMazeCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *RedisMazeCache) key(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, c.prefix, id)
}
