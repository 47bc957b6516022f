package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultMaxDimension = 200
	defaultLockTTL      = 30 * time.Second
	regenerateLockFmt   = "maze:%s:regenerate"
)

// Options tunes the maze service.
type Options struct {
	MaxDimension int           // Largest accepted width or height
	LockTTL      time.Duration // Lifetime of a regeneration lock
	Tracer       trace.Tracer
}

// Mazes generates mazes and keeps them in a repository fronted by a cache.
type Mazes struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	locker i.Locker
	logger i.Logger
	opts   *Options
}

// NewMazeService creates the maze service. A nil opts uses the defaults.
func NewMazeService(repo i.MazeRepo, cache i.MazeCache, locker i.Locker, logger i.Logger, opts *Options) (i.MazeService, error) {
	if repo == nil || cache == nil || locker == nil || logger == nil {
		return nil, errors.New("maze service: missing dependency")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}

	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}

	return &Mazes{
		repo:   repo,
		cache:  cache,
		locker: locker,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate carves a maze as described by cfg and stores it.
func (s *Mazes) Generate(ctx context.Context, cfg dmn.MazeConfig) (*dmn.MazeRecord, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || max(cfg.Width, cfg.Height) > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be within 1 and %d", maze.ErrInvalidDimensions, cfg.Width, cfg.Height, s.opts.MaxDimension)
	}

	strategy := maze.DefaultStrategy
	if cfg.Strategy != "" {
		var err error
		if strategy, err = maze.ParseStrategy(cfg.Strategy); err != nil {
			return nil, err
		}
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	now := time.Now().UTC()
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Sides:     cfg.Sides,
		Strategy:  strategy.String(),
		CreatedAt: now,
	}
	if err := s.carve(ctx, record, strategy, seed); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %s", record.ID, err))
		return nil, err
	}

	if err := s.cache.Set(ctx, record.ID, record.Data); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching maze %s: %s", record.ID, err))
	}

	return record, nil
}

// ByID returns the stored maze.
func (s *Mazes) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Binary returns the encoded maze, from the cache when possible.
func (s *Mazes) Binary(ctx context.Context, id uuid.UUID) ([]byte, error) {
	data, err := s.cache.Get(ctx, id)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, i.ErrCacheMiss) {
		s.logger.Warning(fmt.Sprintf("Reading maze %s from cache: %s", id, err))
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, id, record.Data); err != nil {
		s.logger.Warning(fmt.Sprintf("Caching maze %s: %s", id, err))
	}
	return record.Data, nil
}

// Render draws the maze as text.
func (s *Mazes) Render(ctx context.Context, id uuid.UUID) (string, error) {
	data, err := s.Binary(ctx, id)
	if err != nil {
		return "", err
	}

	m, err := maze.Decode(data)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Decoding stored maze %s: %s", id, err))
		return "", err
	}
	return m.String(), nil
}

// Regenerate carves the maze again with a fresh seed. Concurrent
// regenerations of the same maze fail with dmn.ErrMazeLocked.
func (s *Mazes) Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(regenerateLockFmt, id), s.opts.LockTTL)
	if err != nil {
		if errors.Is(err, i.ErrLockHeld) {
			return nil, fmt.Errorf("%w: %w", dmn.ErrMazeLocked, err)
		}
		s.logger.Error(fmt.Sprintf("Locking maze %s: %s", id, err))
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warning(fmt.Sprintf("Releasing lock of maze %s: %s", id, err))
		}
	}()

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	strategy, err := maze.ParseStrategy(record.Strategy)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if seed == record.Seed {
		seed++
	}
	if err := s.carve(ctx, record, strategy, seed); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze %s: %s", id, err))
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warning(fmt.Sprintf("Invalidating cached maze %s: %s", id, err))
	}

	return record, nil
}

// Delete removes the maze from the repository and the cache.
func (s *Mazes) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warning(fmt.Sprintf("Invalidating cached maze %s: %s", id, err))
	}

	s.logger.Info(fmt.Sprintf("Deleted maze %s", id))
	return nil
}

// carve generates the maze described by record with the given seed and
// stores the outcome in record.
func (s *Mazes) carve(ctx context.Context, record *dmn.MazeRecord, strategy maze.Strategy, seed int64) error {
	_, span := s.opts.Tracer.Start(ctx, "maze.generate")
	defer span.End()

	m, err := maze.New(record.Width, record.Height, record.Sides, strategy, maze.WithRandom(rand.New(rand.NewSource(seed))))
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.Generate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(err.Error())
		return err
	}
	elapsed := time.Since(start)

	// A failure here means a topology defect, never bad input.
	if err := m.Verify(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(fmt.Sprintf("Generated maze %s is not perfect: %s", record.ID, err))
		return fmt.Errorf("%w: %w", maze.ErrGenerationInvariant, err)
	}

	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	record.Seed = seed
	record.OpenPairs = m.OpenPairs()
	record.GenerationMs = elapsed.Milliseconds()
	record.Data = data
	record.UpdatedAt = time.Now().UTC()

	span.SetAttributes(
		attribute.String("maze.id", record.ID.String()),
		attribute.Int("maze.width", record.Width),
		attribute.Int("maze.height", record.Height),
		attribute.String("maze.shape", maze.ShapeName(record.Sides)),
		attribute.String("maze.strategy", strategy.String()),
		attribute.Int64("maze.seed", seed),
		attribute.Int64("maze.generation_ms", record.GenerationMs),
	)

	s.logger.Info(fmt.Sprintf("Generated %dx%d %s maze %s with %s in %dms",
		record.Width, record.Height, maze.ShapeName(record.Sides), record.ID, strategy, record.GenerationMs))
	return nil
}
