package sync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medistay/catalog"
	bookingRepo "medistay/database/repository/booking"
	"medistay/models"
)

// fakeRepo is an in-memory BookingRepository honoring the store contract the
// engine relies on: required-field validation and clientBookingId uniqueness.
type fakeRepo struct {
	byID       map[string]*models.Booking
	byClientID map[string]*models.Booking

	createCalls int
	lookupCalls int

	// conflictOn forces a ConflictError from Create for the given
	// clientBookingId even when the pre-filter saw nothing, simulating a
	// concurrent sync winning the race between lookup and insert.
	conflictOn string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:       make(map[string]*models.Booking),
		byClientID: make(map[string]*models.Booking),
	}
}

func (r *fakeRepo) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	r.createCalls++

	rec := *b
	if rec.ID == "" {
		rec.ID = "srv-" + rec.ClientBookingID
	}
	switch {
	case strings.TrimSpace(rec.Name) == "":
		return nil, &bookingRepo.ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(rec.Email) == "":
		return nil, &bookingRepo.ValidationError{Field: "email", Reason: "is required"}
	case strings.TrimSpace(rec.Phone) == "":
		return nil, &bookingRepo.ValidationError{Field: "phone", Reason: "is required"}
	case !rec.CheckOut.After(rec.CheckIn):
		return nil, &bookingRepo.ValidationError{Field: "checkOut", Reason: "must be after checkIn"}
	case rec.Guests < 1 || rec.Guests > 4:
		return nil, &bookingRepo.ValidationError{Field: "guests", Reason: "must be between 1 and 4"}
	case rec.Nights < 1:
		return nil, &bookingRepo.ValidationError{Field: "nights", Reason: "must be at least 1"}
	}
	if rec.ClientBookingID != "" {
		if rec.ClientBookingID == r.conflictOn {
			return nil, &bookingRepo.ConflictError{ClientBookingID: rec.ClientBookingID}
		}
		if _, exists := r.byClientID[rec.ClientBookingID]; exists {
			return nil, &bookingRepo.ConflictError{ClientBookingID: rec.ClientBookingID}
		}
		r.byClientID[rec.ClientBookingID] = &rec
	}
	r.byID[rec.ID] = &rec
	return &rec, nil
}

func (r *fakeRepo) GetByClientBookingID(ctx context.Context, key string) (*models.Booking, error) {
	r.lookupCalls++
	if b, ok := r.byClientID[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := r.byID[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error { return bookingRepo.ErrNotFound }

func (r *fakeRepo) InsertManyUnordered(ctx context.Context, records []models.Booking) (*bookingRepo.BulkResult, error) {
	res := &bookingRepo.BulkResult{}
	for i := range records {
		_, err := r.Create(ctx, &records[i])
		if err == nil {
			res.Inserted++
			continue
		}
		res.Failures = append(res.Failures, bookingRepo.BulkFailure{
			Index:    i,
			Conflict: bookingRepo.IsConflict(err),
			Message:  err.Error(),
		})
	}
	return res, nil
}

func (r *fakeRepo) CountBySyncSource(ctx context.Context) (map[string]int64, error) { return nil, nil }
func (r *fakeRepo) CountByStatus(ctx context.Context) (map[string]int64, error)     { return nil, nil }
func (r *fakeRepo) RevenueBySyncSource(ctx context.Context) ([]models.RevenueBucket, error) {
	return nil, nil
}
func (r *fakeRepo) RemoveDuplicateClientIDs(ctx context.Context) (int64, error) { return 0, nil }
func (r *fakeRepo) EnsureIndexes() error                                        { return nil }

var _ bookingRepo.BookingRepository = (*fakeRepo)(nil)

func newService(repo *fakeRepo) *DefaultSyncService {
	return &DefaultSyncService{
		Repo:        repo,
		Catalog:     catalog.Default(),
		DepositRate: 0.01,
	}
}

func entry(id string) models.LocalBooking {
	return models.LocalBooking{
		BookingID: id,
		PackageID: "standard-recovery",
		Name:      "Amina Yusuf",
		Email:     "amina@example.com",
		Phone:     "+254700000001",
		CheckIn:   "2025-03-01",
		CheckOut:  "2025-03-04",
		Guests:    models.FlexInt{Value: 2, Valid: true},
	}
}

func TestSyncBatchEmptyBatchTouchesNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	report, created, err := svc.SyncBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Synced)
	assert.Equal(t, 0, report.Duplicates)
	assert.Empty(t, report.Errors)
	assert.Empty(t, created)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, repo.lookupCalls)
}

func TestSyncBatchPersistsNewEntries(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	report, created, err := svc.SyncBatch(context.Background(), []models.LocalBooking{
		entry("local-1"), entry("local-2"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 0, report.Duplicates)
	assert.Empty(t, report.Errors)
	require.Len(t, created, 2)

	// Normalization forces provenance and preserves the idempotency key.
	for _, b := range created {
		assert.Equal(t, models.StatusPending, b.Status)
		assert.Equal(t, models.SourceClientSide, b.SyncSource)
	}
	assert.Equal(t, "local-1", created[0].ClientBookingID)
	assert.Equal(t, 3, created[0].Nights)
}

func TestSyncBatchIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	batch := []models.LocalBooking{entry("local-1"), entry("local-2"), entry("local-3")}

	first, _, err := svc.SyncBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, 3, first.Synced)

	second, created, err := svc.SyncBatch(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Synced)
	assert.Equal(t, 3, second.Duplicates)
	assert.Empty(t, second.Errors)
	assert.Empty(t, created)
	assert.Len(t, repo.byID, 3) // no additional records
}

func TestSyncBatchDuplicateCheckPrecedesPersistence(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{entry("local-1")})
	require.NoError(t, err)
	callsAfterFirst := repo.createCalls

	report, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{entry("local-1")})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Duplicates)
	assert.Empty(t, report.Errors)
	assert.Equal(t, callsAfterFirst, repo.createCalls) // no write attempted
}

func TestSyncBatchPartialFailureIsolation(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	bad := entry("local-2")
	bad.Email = "" // store validation will reject this one

	report, created, err := svc.SyncBatch(context.Background(), []models.LocalBooking{
		entry("local-1"), bad, entry("local-3"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "local-2", report.Errors[0].BookingID)
	assert.Contains(t, report.Errors[0].Error, "email")
	require.Len(t, created, 2)
	assert.Equal(t, "local-1", created[0].ClientBookingID)
	assert.Equal(t, "local-3", created[1].ClientBookingID)
}

func TestSyncBatchMixedScenario(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	// Pre-existing record makes local-dup a duplicate.
	_, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{entry("local-dup")})
	require.NoError(t, err)

	odd := entry("local-odd")
	odd.PackageID = "deluxe-villa" // unresolvable, falls back to first available

	report, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{
		entry("local-a"), entry("local-b"), entry("local-dup"), odd,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Synced)
	assert.Equal(t, 1, report.Duplicates)
	assert.Empty(t, report.Errors)

	// The fallback attributed the odd entry to the catalog's first package.
	persisted, err := repo.GetByClientBookingID(context.Background(), "local-odd")
	require.NoError(t, err)
	assert.Equal(t, "standard-recovery", persisted.PackageID)
}

func TestSyncBatchConflictRaceReclassifiedAsDuplicate(t *testing.T) {
	repo := newFakeRepo()
	repo.conflictOn = "local-1" // pre-filter misses, insert conflicts
	svc := newService(repo)

	report, created, err := svc.SyncBatch(context.Background(), []models.LocalBooking{entry("local-1")})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Synced)
	assert.Equal(t, 1, report.Duplicates)
	assert.Empty(t, report.Errors)
	assert.Empty(t, created)
}

func TestSyncBatchStrictPackageLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	svc.StrictPackageLookup = true

	odd := entry("local-odd")
	odd.PackageID = "deluxe-villa"

	report, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{odd})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Synced)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error, "deluxe-villa")
	assert.Zero(t, repo.createCalls)
}

func TestSyncBatchNormalizationDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	e := entry("local-1")
	e.Guests = models.FlexInt{} // unparsable guest count
	e.Nights = models.FlexInt{}

	report, created, err := svc.SyncBatch(context.Background(), []models.LocalBooking{e})

	require.NoError(t, err)
	require.Equal(t, 1, report.Synced)
	require.Len(t, created, 1)
	assert.Equal(t, 2, created[0].Guests)          // default when unparsable
	assert.Equal(t, 3, created[0].Nights)          // derived from the stay window
	assert.Equal(t, 360.0, created[0].PackageTotal) // recomputed from catalog
	assert.Equal(t, created[0].PackageTotal+created[0].AddOnsTotal+created[0].MedicalServicesTotal, created[0].Total)
}

func TestSyncBatchKeepsClientTotalsWhenSupplied(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	e := entry("local-1")
	e.PackageTotal = models.FlexFloat{Value: 300, Valid: true}
	e.Total = models.FlexFloat{Value: 300, Valid: true}
	e.Deposit = models.FlexFloat{Value: 3, Valid: true}

	_, created, err := svc.SyncBatch(context.Background(), []models.LocalBooking{e})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 300.0, created[0].Total)
	assert.Equal(t, 3.0, created[0].Deposit)
}

func TestLastReportWithoutCache(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.LastReport(context.Background())
	assert.True(t, errors.Is(err, ErrNoReport))
}
