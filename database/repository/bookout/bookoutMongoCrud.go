// File: database/repository/bookout/bookoutMongoCrud.go
package bookoutRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studiobook/models"
)

// Create inserts a single bookout document.
func (repo *mongoBookoutRepo) Create(ctx context.Context, bookout *models.Bookout) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if bookout.ID == "" {
		bookout.ID = uuid.New().String()
	}
	if bookout.CreatedAt.IsZero() {
		bookout.CreatedAt = time.Now()
	}
	_, err := repo.coll.InsertOne(ctx, bookout)
	if err != nil {
		return fmt.Errorf("error creating bookout: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of bookout documents as one ordered write.
// Either the whole batch is accepted or the call fails; callers treat a
// failure as "nothing applied" and re-fetch before retrying.
func (repo *mongoBookoutRepo) CreateMany(ctx context.Context, bookouts []models.Bookout) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	ids := make([]string, len(bookouts))
	docs := make([]interface{}, len(bookouts))
	for i, b := range bookouts {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		ids[i] = b.ID
		docs[i] = b
	}

	_, err := repo.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("error batch creating bookouts: %w", err)
	}
	return ids, nil
}

// GetAll returns every bookout document.
func (repo *mongoBookoutRepo) GetAll(ctx context.Context) ([]models.Bookout, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookouts: %w", err)
	}
	defer cursor.Close(ctx)

	var bookouts []models.Bookout
	if err := cursor.All(ctx, &bookouts); err != nil {
		return nil, fmt.Errorf("error decoding bookouts: %w", err)
	}
	return bookouts, nil
}

// GetByType returns bookouts of one type ("personal" or "ghost").
func (repo *mongoBookoutRepo) GetByType(ctx context.Context, bookoutType string) ([]models.Bookout, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"type": bookoutType})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookouts: %w", err)
	}
	defer cursor.Close(ctx)

	var bookouts []models.Bookout
	if err := cursor.All(ctx, &bookouts); err != nil {
		return nil, fmt.Errorf("error decoding bookouts: %w", err)
	}
	return bookouts, nil
}

// Update modifies an existing bookout document.
func (repo *mongoBookoutRepo) Update(ctx context.Context, bookoutID string, updated *models.Bookout) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookoutID}
	update := bson.M{"$set": bson.M{
		"reason":     updated.Reason,
		"type":       updated.Type,
		"start_date": updated.StartDate,
		"end_date":   updated.EndDate,
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating bookout %s: %w", bookoutID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByID removes a single bookout document.
func (repo *mongoBookoutRepo) DeleteByID(ctx context.Context, bookoutID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookoutID}
	res, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting bookout %s: %w", bookoutID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteManyByIDs removes a batch of bookouts and returns the deleted count.
func (repo *mongoBookoutRepo) DeleteManyByIDs(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	res, err := repo.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error batch deleting bookouts: %w", err)
	}
	return res.DeletedCount, nil
}

func boolPtr(b bool) *bool { return &b }
