// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"studiobook/config"
	"studiobook/database"
	"studiobook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetAllExcludingStatuses(ctx context.Context, excluded []string) ([]models.Booking, error)
	Update(ctx context.Context, bookingID string, updated *models.Booking) error
	UpdateDates(ctx context.Context, bookingID, startDate, endDate string) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
	Delete(ctx context.Context, bookingID string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
