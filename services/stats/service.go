// Package stats aggregates persisted bookings for operational visibility.
// Read-only and uncached: every call recomputes from the store.
package stats

import (
	"context"

	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
)

// Reporter produces the booking statistics snapshot.
type Reporter interface {
	Report(ctx context.Context) (*models.BookingStats, error)
}

// DefaultReporter is the production implementation.
type DefaultReporter struct {
	Repo bookingRepo.BookingRepository
}

func (r *DefaultReporter) Report(ctx context.Context) (*models.BookingStats, error) {
	bySource, err := r.Repo.CountBySyncSource(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := r.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := r.Repo.RevenueBySyncSource(ctx)
	if err != nil {
		return nil, err
	}
	return &models.BookingStats{
		BySyncSource: bySource,
		ByStatus:     byStatus,
		Revenue:      revenue,
	}, nil
}

var _ Reporter = (*DefaultReporter)(nil)
