// Package domain holds the records exchanged between the maze service, its
// storage and the API.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain errors.
var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrMazeLocked   = errors.New("maze is being regenerated")
)

// MazeConfig describes a maze to generate.
type MazeConfig struct {
	Width    int
	Height   int
	Sides    int
	Strategy string
	Seed     *int64 // nil picks a random seed
}

// MazeRecord is a generated maze with its encoded door states.
type MazeRecord struct {
	ID           uuid.UUID `bson:"_id"`
	Width        int       `bson:"width"`
	Height       int       `bson:"height"`
	Sides        int       `bson:"sides"`
	Strategy     string    `bson:"strategy"`
	Seed         int64     `bson:"seed"`
	OpenPairs    int       `bson:"openPairs"`
	GenerationMs int64     `bson:"generationMs"`
	Data         []byte    `bson:"data"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
