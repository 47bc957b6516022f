package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLocker hands out redsync mutexes.
type RedisLocker struct {
	locker *redsync.Redsync
}

// NewRedisLocker creates a locker backed by the given Redis client.
func NewRedisLocker(client *redis.Client) i.Locker {
	pool := goredis.NewPool(client)
	return &RedisLocker{locker: redsync.New(pool)}
}

// Lock tries once to take the mutex for key. It fails with i.ErrLockHeld
// when someone else holds it; Redis failures are returned as they are.
func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func() error, error) {
	mutex := l.locker.NewMutex(key, redsync.WithExpiry(ttl), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		if isTaken(err) {
			return nil, fmt.Errorf("%w: %s: %w", i.ErrLockHeld, key, err)
		}
		return nil, err
	}

	return func() error {
		_, err := mutex.UnlockContext(context.Background())
		return err
	}, nil
}

// isTaken reports whether a redsync lock error means another owner holds the
// mutex.
func isTaken(err error) bool {
	var taken *redsync.ErrTaken
	return errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken)
}
