package notification

import (
	"fmt"
	"strings"

	"medistay/models"
)

const dateLayout = "Mon, 02 Jan 2006"

func confirmationEmail(b *models.Booking) models.EmailPayload {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\n", b.Name)
	fmt.Fprintf(&sb, "We have received your booking for the %s package.\n\n", b.PackageID)
	fmt.Fprintf(&sb, "Check-in:  %s\n", b.CheckIn.Format(dateLayout))
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut.Format(dateLayout))
	fmt.Fprintf(&sb, "Guests:    %d\n", b.Guests)
	fmt.Fprintf(&sb, "Nights:    %d\n\n", b.Nights)
	fmt.Fprintf(&sb, "Total:     %.2f\n", b.Total)
	fmt.Fprintf(&sb, "Deposit due at confirmation: %.2f\n\n", b.Deposit)
	sb.WriteString("Our team will reach out shortly to confirm your stay.\n")

	return models.EmailPayload{
		To:      b.Email,
		ToName:  b.Name,
		Subject: fmt.Sprintf("Booking received (reference %s)", b.ID),
		Body:    sb.String(),
	}
}

func adminAlertEmail(adminEmail string, b *models.Booking) models.EmailPayload {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New %s booking %s\n\n", b.SyncSource, b.ID)
	fmt.Fprintf(&sb, "Guest:   %s <%s> %s\n", b.Name, b.Email, b.Phone)
	fmt.Fprintf(&sb, "Package: %s, %d nights, %d guests\n", b.PackageID, b.Nights, b.Guests)
	fmt.Fprintf(&sb, "Total:   %.2f (deposit %.2f)\n", b.Total, b.Deposit)
	if b.PatientCondition != "" {
		fmt.Fprintf(&sb, "Patient condition: %s\n", b.PatientCondition)
	}
	if b.SpecialRequirements != "" {
		fmt.Fprintf(&sb, "Special requirements: %s\n", b.SpecialRequirements)
	}

	return models.EmailPayload{
		To:      adminEmail,
		ToName:  "Bookings Admin",
		Subject: fmt.Sprintf("New booking %s (%s)", b.ID, b.SyncSource),
		Body:    sb.String(),
	}
}

func statusChangeEmail(b *models.Booking, oldStatus string) models.EmailPayload {
	body := fmt.Sprintf(
		"Dear %s,\n\nThe status of your booking %s changed from %s to %s.\n",
		b.Name, b.ID, oldStatus, b.Status,
	)
	return models.EmailPayload{
		To:      b.Email,
		ToName:  b.Name,
		Subject: fmt.Sprintf("Your booking is now %s", b.Status),
		Body:    body,
	}
}

func syncSummaryEmail(adminEmail string, rep *models.SyncReport) models.EmailPayload {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Offline booking sync finished.\n\n")
	fmt.Fprintf(&sb, "Synced:     %d\n", rep.Synced)
	fmt.Fprintf(&sb, "Duplicates: %d\n", rep.Duplicates)
	fmt.Fprintf(&sb, "Errors:     %d\n", len(rep.Errors))
	for _, e := range rep.Errors {
		fmt.Fprintf(&sb, "  - %s: %s\n", e.BookingID, e.Error)
	}

	return models.EmailPayload{
		To:      adminEmail,
		ToName:  "Bookings Admin",
		Subject: fmt.Sprintf("Booking sync: %d synced, %d duplicates, %d errors", rep.Synced, rep.Duplicates, len(rep.Errors)),
		Body:    sb.String(),
	}
}
