package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
	"medistay/services/booking"
	"medistay/utils"
)

const (
	lastReportKey = "sync:last-report"
	lastReportTTL = 7 * 24 * time.Hour
)

// SyncBatch reconciles a batch of locally captured bookings. Re-running the
// same batch is safe: everything persisted on an earlier pass is classified
// as a duplicate, either by the pre-filter here or by the store's unique
// index when two syncs race.
func (s *DefaultSyncService) SyncBatch(ctx context.Context, entries []models.LocalBooking) (*models.SyncReport, []models.Booking, error) {
	report := &models.SyncReport{Errors: []models.SyncItemError{}}
	if len(entries) == 0 {
		return report, nil, nil
	}

	logger := utils.GetLogger()
	var created []models.Booking

	for _, entry := range entries {
		// Duplicate check against the store first; a hit is not an error.
		if entry.BookingID != "" {
			_, err := s.Repo.GetByClientBookingID(ctx, entry.BookingID)
			if err == nil {
				report.Duplicates++
				continue
			}
			if !bookingRepo.IsNotFound(err) {
				report.Errors = append(report.Errors, models.SyncItemError{
					BookingID: entry.BookingID,
					Error:     fmt.Sprintf("duplicate lookup failed: %v", err),
				})
				continue
			}
		}

		rec, err := s.normalize(entry)
		if err != nil {
			report.Errors = append(report.Errors, models.SyncItemError{
				BookingID: entry.BookingID,
				Error:     err.Error(),
			})
			continue
		}

		persisted, err := s.Repo.Create(ctx, rec)
		switch {
		case err == nil:
			report.Synced++
			created = append(created, *persisted)
		case bookingRepo.IsConflict(err):
			// Lost the race against a concurrent sync; same logical
			// booking is persisted, so this is a duplicate, not a failure.
			report.Duplicates++
		default:
			report.Errors = append(report.Errors, models.SyncItemError{
				BookingID: entry.BookingID,
				Error:     err.Error(),
			})
		}
	}

	logger.Info("booking sync finished",
		zap.Int("batch", len(entries)),
		zap.Int("synced", report.Synced),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("errors", len(report.Errors)),
	)
	s.finish(ctx, report)
	return report, created, nil
}

// normalize coerces a loose capture entry into a store record. Guest count
// defaults to 2 when unparsable; nights come from the entry, the dates, or
// default to 1; status and syncSource are forced. Missing client totals are
// recomputed from the catalog so the breakdown invariant holds.
func (s *DefaultSyncService) normalize(entry models.LocalBooking) (*models.Booking, error) {
	pkg, ok := s.resolvePackage(entry.PackageID)
	if !ok {
		return nil, fmt.Errorf("package %q could not be resolved", entry.PackageID)
	}

	checkIn, _ := time.Parse("2006-01-02", entry.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", entry.CheckOut)

	nights := entry.Nights.Or(0)
	if nights < 1 {
		if checkOut.After(checkIn) {
			nights = booking.ComputeNights(checkIn, checkOut)
		} else {
			nights = 1
		}
	}

	rec := &models.Booking{
		ClientBookingID: entry.BookingID,
		PackageID:       pkg.ID,

		Name:  entry.Name,
		Email: entry.Email,
		Phone: entry.Phone,

		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   entry.Guests.Or(2),
		Nights:   nights,

		AddOns:          entry.AddOns,
		MedicalServices: entry.MedicalServices,

		Status:     models.StatusPending,
		SyncSource: models.SourceClientSide,

		Address:             entry.Address,
		Notes:               entry.Notes,
		PatientCondition:    entry.PatientCondition,
		SpecialRequirements: entry.SpecialRequirements,
	}

	if entry.Total.Valid {
		rec.PackageTotal = entry.PackageTotal.Value
		rec.AddOnsTotal = entry.AddOnsTotal.Value
		rec.MedicalServicesTotal = entry.MedicalServicesTotal.Value
		rec.Total = entry.Total.Value
		rec.Deposit = entry.Deposit.Value
	} else {
		totals := booking.ComputeTotals(s.Catalog, pkg, nights, entry.AddOns, entry.MedicalServices, s.DepositRate)
		rec.PackageTotal = totals.Package
		rec.AddOnsTotal = totals.AddOns
		rec.MedicalServicesTotal = totals.Medical
		rec.Total = totals.Total
		rec.Deposit = totals.Deposit
	}
	return rec, nil
}

func (s *DefaultSyncService) resolvePackage(id string) (models.Package, bool) {
	if s.StrictPackageLookup {
		return s.Catalog.ResolveStrict(id)
	}
	return s.Catalog.Resolve(id)
}

// finish caches the report for the dashboard and emails the summary. Both
// are best-effort; reconciliation results stand on their own.
func (s *DefaultSyncService) finish(ctx context.Context, report *models.SyncReport) {
	logger := utils.GetLogger()
	if s.Cache != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := s.Cache.Set(ctx, lastReportKey, data, lastReportTTL).Err(); err != nil {
				logger.Warn("failed to cache sync report", zap.Error(err))
			}
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.SyncSummary(ctx, report); err != nil {
			logger.Warn("sync summary email failed", zap.Error(err))
		}
	}
}

// LastReport returns the cached report from the most recent run.
func (s *DefaultSyncService) LastReport(ctx context.Context) (*models.SyncReport, error) {
	if s.Cache == nil {
		return nil, ErrNoReport
	}
	data, err := s.Cache.Get(ctx, lastReportKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNoReport
	}
	if err != nil {
		return nil, err
	}
	var report models.SyncReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
