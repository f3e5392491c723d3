package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medistay/models"
)

func TestBulkImportEmptyBatch(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	report, err := svc.BulkImport(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Synced)
	assert.Zero(t, repo.createCalls)
}

func TestBulkImportInsertsBatch(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	report, err := svc.BulkImport(context.Background(), []models.LocalBooking{
		entry("local-1"), entry("local-2"), entry("local-3"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Synced)
	assert.Equal(t, 0, report.Duplicates)
	assert.Empty(t, report.Errors)
	assert.Len(t, repo.byClientID, 3)
}

func TestBulkImportInMemoryDedupeFirstWins(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	first := entry("local-1")
	first.Guests = models.FlexInt{Value: 1, Valid: true}
	repeat := entry("local-1")
	repeat.Guests = models.FlexInt{Value: 4, Valid: true}

	report, err := svc.BulkImport(context.Background(), []models.LocalBooking{first, repeat})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 1, report.Duplicates)

	persisted, err := repo.GetByClientBookingID(context.Background(), "local-1")
	require.NoError(t, err)
	assert.Equal(t, 1, persisted.Guests) // first occurrence won
}

func TestBulkImportStoreConflictsCountAsDuplicates(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	// A prior run already persisted local-1; bulk mode skips the store
	// lookup, so the unique index surfaces it as a conflict.
	_, _, err := svc.SyncBatch(context.Background(), []models.LocalBooking{entry("local-1")})
	require.NoError(t, err)

	report, err := svc.BulkImport(context.Background(), []models.LocalBooking{
		entry("local-1"), entry("local-2"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, 1, report.Duplicates)
	assert.Empty(t, report.Errors)
}

func TestBulkImportFailureMapsBackToBookingID(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	bad := entry("local-2")
	bad.Phone = ""

	report, err := svc.BulkImport(context.Background(), []models.LocalBooking{
		entry("local-1"), bad, entry("local-3"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "local-2", report.Errors[0].BookingID)
	assert.Contains(t, report.Errors[0].Error, "phone")
}

func TestBulkImportUnresolvablePackageSkipsInsert(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	svc.StrictPackageLookup = true

	odd := entry("local-odd")
	odd.PackageID = "no-such-package"

	report, err := svc.BulkImport(context.Background(), []models.LocalBooking{odd})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Synced)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "local-odd", report.Errors[0].BookingID)
	assert.Zero(t, repo.createCalls)
}
