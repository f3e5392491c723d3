package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medistay/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:         "bkg-1",
		PackageID:  "standard-recovery",
		Name:       "Amina Yusuf",
		Email:      "amina@example.com",
		Phone:      "+254700000001",
		CheckIn:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Nights:     3,
		Total:      455,
		Deposit:    4.55,
		Status:     models.StatusPending,
		SyncSource: models.SourceClientSide,
	}
}

func TestConfirmationEmail(t *testing.T) {
	p := confirmationEmail(sampleBooking())

	assert.Equal(t, "amina@example.com", p.To)
	assert.Equal(t, "Amina Yusuf", p.ToName)
	assert.Contains(t, p.Subject, "bkg-1")
	assert.Contains(t, p.Body, "standard-recovery")
	assert.Contains(t, p.Body, "455.00")
	assert.Contains(t, p.Body, "4.55")
}

func TestAdminAlertEmailIncludesMedicalContext(t *testing.T) {
	b := sampleBooking()
	b.PatientCondition = "post-surgery recovery"
	b.SpecialRequirements = "wheelchair access"

	p := adminAlertEmail("admin@medistay.example", b)

	assert.Equal(t, "admin@medistay.example", p.To)
	assert.Contains(t, p.Subject, "client-side")
	assert.Contains(t, p.Body, "post-surgery recovery")
	assert.Contains(t, p.Body, "wheelchair access")
}

func TestStatusChangeEmail(t *testing.T) {
	b := sampleBooking()
	b.Status = models.StatusConfirmed

	p := statusChangeEmail(b, models.StatusPending)

	assert.Contains(t, p.Body, "from pending to confirmed")
	assert.Contains(t, p.Subject, "confirmed")
}

func TestSyncSummaryEmailListsFailures(t *testing.T) {
	rep := &models.SyncReport{
		Synced:     3,
		Duplicates: 1,
		Errors: []models.SyncItemError{
			{BookingID: "local-9", Error: "email is required"},
		},
	}

	p := syncSummaryEmail("admin@medistay.example", rep)

	assert.Contains(t, p.Subject, "3 synced")
	assert.Contains(t, p.Body, "local-9")
	assert.Contains(t, p.Body, "email is required")
}
