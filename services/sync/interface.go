// Package sync reconciles locally captured bookings into the authoritative
// store. The engine only reads the batch it is handed and reports per-item
// outcomes; clearing the client's local buffer is the caller's decision,
// never the engine's.
package sync

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"medistay/catalog"
	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
	"medistay/services/notification"
)

// ErrNoReport is returned by LastReport when no reconciliation has run yet
// (or the cached report expired).
var ErrNoReport = errors.New("no sync report cached")

// SyncService is the reconciliation engine.
type SyncService interface {
	// SyncBatch processes entries in order, one at a time: duplicate check,
	// package resolution, normalization, persist. One item's failure never
	// blocks the rest. Returns the report and the records actually created.
	SyncBatch(ctx context.Context, entries []models.LocalBooking) (*models.SyncReport, []models.Booking, error)

	// BulkImport is the throughput variant: in-memory dedupe by bookingId
	// (first occurrence wins) followed by a single unordered bulk insert.
	// It skips the per-item store lookup, so duplicates already persisted
	// from a prior run surface as insert conflicts instead.
	BulkImport(ctx context.Context, entries []models.LocalBooking) (*models.SyncReport, error)

	// LastReport returns the most recent cached report.
	LastReport(ctx context.Context) (*models.SyncReport, error)
}

// DefaultSyncService is the production implementation.
type DefaultSyncService struct {
	Repo        bookingRepo.BookingRepository
	Catalog     catalog.Catalog
	Notifier    notification.Notifier
	Cache       *redis.Client
	DepositRate float64

	// StrictPackageLookup turns unresolvable package ids into per-item
	// errors instead of falling back to the first available package.
	StrictPackageLookup bool
}

var _ SyncService = (*DefaultSyncService)(nil)
