package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
	"medistay/utils"
)

// parseDate accepts the plain ISO date the frontend sends, or a full
// RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateBooking validates and persists a direct submission, then fires the
// confirmation email and, for client-side captures, an admin alert. Both
// notifications are best-effort: the created record is returned regardless.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, NewValidationError("checkIn is not a valid date")
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, NewValidationError("checkOut is not a valid date")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("checkOut must be after checkIn")
	}

	pkg, ok := s.Catalog.Get(req.PackageID)
	if !ok {
		return nil, ErrPackageNotFound
	}

	nights := ComputeNights(checkIn, checkOut)
	totals := ComputeTotals(s.Catalog, pkg, nights, req.AddOns, req.MedicalServices, s.DepositRate)

	source := req.SyncSource
	if source == "" {
		source = models.SourceServerSide
	}

	rec := &models.Booking{
		PackageID: pkg.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    req.Guests,
		Nights:    nights,

		AddOns:          req.AddOns,
		MedicalServices: req.MedicalServices,

		PackageTotal:         totals.Package,
		AddOnsTotal:          totals.AddOns,
		MedicalServicesTotal: totals.Medical,
		Total:                totals.Total,
		Deposit:              totals.Deposit,

		Status:     models.StatusPending,
		SyncSource: source,

		Address:             req.Address,
		Notes:               req.Notes,
		PatientCondition:    req.PatientCondition,
		SpecialRequirements: req.SpecialRequirements,
	}

	created, err := s.Repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if s.Notifier != nil {
		if err := s.Notifier.BookingConfirmation(ctx, created); err != nil {
			logger.Warn("booking confirmation email failed", zap.String("bookingId", created.ID), zap.Error(err))
		}
		if created.SyncSource == models.SourceClientSide {
			if err := s.Notifier.AdminAlert(ctx, created); err != nil {
				logger.Warn("admin alert email failed", zap.String("bookingId", created.ID), zap.Error(err))
			}
		}
	}
	return created, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Repo.List(ctx, f)
}

// UpdateStatus applies an admin-driven status change. Any transition between
// the four statuses is allowed.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, NewValidationError("status must be one of pending, confirmed, cancelled, completed")
	}

	prev, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil && prev.Status != updated.Status {
		if err := s.Notifier.StatusChange(ctx, updated, prev.Status); err != nil {
			utils.GetLogger().Warn("status change email failed", zap.String("bookingId", id), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// CleanupDuplicates removes all but the oldest record per duplicated
// clientBookingId and returns how many were deleted.
func (s *DefaultBookingService) CleanupDuplicates(ctx context.Context) (int64, error) {
	removed, err := s.Repo.RemoveDuplicateClientIDs(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		utils.GetLogger().Info("removed duplicate bookings", zap.Int64("count", removed))
	}
	return removed, nil
}

var _ BookingService = (*DefaultBookingService)(nil)
