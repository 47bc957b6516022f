package i

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCacheMiss is returned by MazeCache.Get when the maze is not cached.
	ErrCacheMiss = errors.New("cache miss")

	// ErrLockHeld is returned by Locker.Lock when someone else holds the lock.
	ErrLockHeld = errors.New("lock is held")
)

// MazeCache keeps encoded mazes close to the API.
type MazeCache interface {
	Get(ctx context.Context, id uuid.UUID) ([]byte, error)
	Set(ctx context.Context, id uuid.UUID, data []byte) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// Locker grants exclusive access to a key across service instances.
type Locker interface {
	// Lock acquires the lock or fails right away with ErrLockHeld if it is
	// held. The returned function releases it.
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func() error, err error)
}
