package booking

import (
	"context"

	"medistay/catalog"
	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
	"medistay/services/notification"
)

// BookingService handles direct booking submissions and admin operations on
// persisted records.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CleanupDuplicates(ctx context.Context) (int64, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Catalog     catalog.Catalog
	Notifier    notification.Notifier
	DepositRate float64
}
