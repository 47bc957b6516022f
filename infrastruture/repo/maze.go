package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = 2 * time.Second
	readTimeout  = 2 * time.Second
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
// The creation time is only written when the maze is first inserted.
func (r *MazeRepo) Save(ctx context.Context, maze *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{
		"$set": bson.M{
			"width":        maze.Width,
			"height":       maze.Height,
			"sides":        maze.Sides,
			"strategy":     maze.Strategy,
			"seed":         maze.Seed,
			"openPairs":    maze.OpenPairs,
			"generationMs": maze.GenerationMs,
			"data":         maze.Data,
			"updatedAt":    maze.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": maze.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", maze.ID, err)
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns dmn.ErrMazeNotFound if no such maze is stored.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var maze dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("reading maze %s: %w", id, err)
	}
	return &maze, nil
}

// Delete removes a maze by its ID.
// Returns dmn.ErrMazeNotFound if no such maze is stored.
func (r *MazeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting maze %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return dmn.ErrMazeNotFound
	}
	return nil
}
