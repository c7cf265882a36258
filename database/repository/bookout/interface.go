// File: database/repository/bookout/interface.go
package bookoutRepo

import (
	"context"

	"studiobook/config"
	"studiobook/database"
	"studiobook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookoutRepository interface {
	Create(ctx context.Context, bookout *models.Bookout) error
	CreateMany(ctx context.Context, bookouts []models.Bookout) ([]string, error)
	GetAll(ctx context.Context) ([]models.Bookout, error)
	GetByType(ctx context.Context, bookoutType string) ([]models.Bookout, error)
	Update(ctx context.Context, bookoutID string, updated *models.Bookout) error
	DeleteByID(ctx context.Context, bookoutID string) error
	DeleteManyByIDs(ctx context.Context, ids []string) (int64, error)
}

type mongoBookoutRepo struct {
	coll *mongo.Collection
}

// NewMongoBookoutRepo constructs a new MongoDB BookoutRepository.
func NewMongoBookoutRepo() BookoutRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookoutRepo{
		coll: db.Collection("bookouts"),
	}
}
