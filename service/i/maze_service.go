package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeService generates and serves stored mazes.
type MazeService interface {
	// Generate carves a new maze and stores it.
	Generate(ctx context.Context, cfg dmn.MazeConfig) (*dmn.MazeRecord, error)

	// ByID returns the stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Binary returns the maze in its file format.
	Binary(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Render returns a textual drawing of the maze.
	Render(ctx context.Context, id uuid.UUID) (string, error)

	// Regenerate carves the maze again with a new seed.
	Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes the maze.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the leveled logger used across services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
