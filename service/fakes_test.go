package service

import (
	"context"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

type memRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]dmn.MazeRecord
	saveErr error
	reads   int
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]dmn.MazeRecord)}
}

func (r *memRepo) Save(_ context.Context, m *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[m.ID] = *m
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	m, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return &m, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return dmn.ErrMazeNotFound
	}
	delete(r.records, id)
	return nil
}

type memCache struct {
	mu     sync.Mutex
	data   map[uuid.UUID][]byte
	setErr error
}

func newMemCache() *memCache {
	return &memCache{data: make(map[uuid.UUID][]byte)}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[id]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return d, nil
}

func (c *memCache) Set(_ context.Context, id uuid.UUID, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[id] = data
	return nil
}

func (c *memCache) Invalidate(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, id)
	return nil
}

type memLocker struct {
	mu      sync.Mutex
	held    map[string]bool
	lockErr error
}

func newMemLocker() *memLocker {
	return &memLocker{held: make(map[string]bool)}
}

func (l *memLocker) Lock(_ context.Context, key string, _ time.Duration) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	if l.held[key] {
		return nil, i.ErrLockHeld
	}
	l.held[key] = true
	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		return nil
	}, nil
}

type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}
