// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"medistay/config"
	"medistay/database"
	"medistay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListFilter narrows List results. Zero values mean no constraint.
type ListFilter struct {
	Status     string
	SyncSource string
	Limit      int64
}

// BulkFailure describes one rejected document from an unordered bulk insert.
type BulkFailure struct {
	Index    int
	Conflict bool
	Message  string
}

// BulkResult reports the partial-success outcome of an unordered bulk insert.
type BulkResult struct {
	Inserted int
	Failures []BulkFailure
}

// BookingRepository is the authoritative booking record store.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByClientBookingID(ctx context.Context, key string) (*models.Booking, error)
	List(ctx context.Context, f ListFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	InsertManyUnordered(ctx context.Context, records []models.Booking) (*BulkResult, error)
	CountBySyncSource(ctx context.Context) (map[string]int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	RevenueBySyncSource(ctx context.Context) ([]models.RevenueBucket, error)
	RemoveDuplicateClientIDs(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
