package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-redsync/redsync/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsTaken(t *testing.T) {
	assert.True(t, isTaken(redsync.ErrFailed))
	assert.True(t, isTaken(&redsync.ErrTaken{Nodes: []int{0}}))
	assert.True(t, isTaken(fmt.Errorf("locking: %w", &redsync.ErrTaken{Nodes: []int{0}})))

	assert.False(t, isTaken(errors.New("dial tcp 127.0.0.1:6379: connection refused")))
	assert.False(t, isTaken(context.Canceled))
	assert.False(t, isTaken(&redsync.RedisError{Node: 0, Err: errors.New("i/o timeout")}))
}
