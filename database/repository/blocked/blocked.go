// File: database/repository/blocked/blocked.go
package blockedRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bakehouse/database"
	"bakehouse/models"
)

// BlockedRepository defines methods to interact with operator-defined
// blocked intervals. Reads return empty slices, not errors, when nothing
// matches.
type BlockedRepository interface {
	GetByDate(ctx context.Context, date string) ([]models.BlockedInterval, error)
	ListFromDate(ctx context.Context, date string) ([]models.BlockedInterval, error)
	Create(ctx context.Context, block *models.BlockedInterval) error
	Delete(ctx context.Context, id string) error
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo constructs a new MongoDB BlockedRepository.
func NewMongoBlockedRepo() BlockedRepository {
	return &mongoBlockedRepo{
		coll: database.DB().Collection("blocked_intervals"),
	}
}

func (r *mongoBlockedRepo) GetByDate(ctx context.Context, date string) ([]models.BlockedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedInterval
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *mongoBlockedRepo) ListFromDate(ctx context.Context, date string) ([]models.BlockedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": bson.M{"$gte": date}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedInterval
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *mongoBlockedRepo) Create(ctx context.Context, block *models.BlockedInterval) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, block)
	return err
}

func (r *mongoBlockedRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
