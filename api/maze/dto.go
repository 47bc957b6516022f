// Package mazeapi provides the request and response bodies of the maze routes.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateRequest describes a maze to generate.
type GenerateRequest struct {
	Width    int    `json:"width" binding:"required,min=1"`
	Height   int    `json:"height" binding:"required,min=1"`
	Sides    int    `json:"sides" binding:"required"`
	Strategy string `json:"strategy"`
	Seed     *int64 `json:"seed"`
}

// MazeResponse is the metadata of a stored maze.
type MazeResponse struct {
	ID           string    `json:"id"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Sides        int       `json:"sides"`
	Shape        string    `json:"shape"`
	Strategy     string    `json:"strategy"`
	Seed         int64     `json:"seed"`
	OpenPairs    int       `json:"open_pairs"`
	GenerationMs int64     `json:"generation_ms"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r GenerateRequest) config() dmn.MazeConfig {
	return dmn.MazeConfig{
		Width:    r.Width,
		Height:   r.Height,
		Sides:    r.Sides,
		Strategy: r.Strategy,
		Seed:     r.Seed,
	}
}

func newMazeResponse(rec *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:           rec.ID.String(),
		Width:        rec.Width,
		Height:       rec.Height,
		Sides:        rec.Sides,
		Shape:        maze.ShapeName(rec.Sides),
		Strategy:     rec.Strategy,
		Seed:         rec.Seed,
		OpenPairs:    rec.OpenPairs,
		GenerationMs: rec.GenerationMs,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
