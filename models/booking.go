package models

import "time"

// Booking statuses. Transitions are admin-driven and unconstrained.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Sync sources. Set once at creation, immutable thereafter.
const (
	SourceClientSide = "client-side"
	SourceServerSide = "server-side"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is the authoritative persisted booking record.
type Booking struct {
	ID              string `bson:"id" json:"id"`                                               // Server-assigned identifier (UUID)
	ClientBookingID string `bson:"clientBookingId,omitempty" json:"clientBookingId,omitempty"` // Idempotency key for locally captured bookings; sparse-unique

	PackageID string `bson:"packageId" json:"packageId"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`

	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`
	Guests   int       `bson:"guests" json:"guests"`
	Nights   int       `bson:"nights" json:"nights"`

	AddOns          []string `bson:"addOns,omitempty" json:"addOns,omitempty"`
	MedicalServices []string `bson:"medicalServices,omitempty" json:"medicalServices,omitempty"`

	PackageTotal         float64 `bson:"packageTotal" json:"packageTotal"`
	AddOnsTotal          float64 `bson:"addOnsTotal" json:"addOnsTotal"`
	MedicalServicesTotal float64 `bson:"medicalServicesTotal" json:"medicalServicesTotal"`
	Total                float64 `bson:"total" json:"total"`
	Deposit              float64 `bson:"deposit" json:"deposit"`

	Status     string `bson:"status" json:"status"`
	SyncSource string `bson:"syncSource" json:"syncSource"`

	Address             string `bson:"address,omitempty" json:"address,omitempty"`
	Notes               string `bson:"notes,omitempty" json:"notes,omitempty"`
	PatientCondition    string `bson:"patientCondition,omitempty" json:"patientCondition,omitempty"`
	SpecialRequirements string `bson:"specialRequirements,omitempty" json:"specialRequirements,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the direct-submission payload. Unknown fields are ignored.
type BookingRequest struct {
	PackageID string `json:"packageId"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	CheckIn  string `json:"checkIn"`  // "2006-01-02" or RFC3339
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`

	AddOns          []string `json:"addOns"`
	MedicalServices []string `json:"medicalServices"`

	SyncSource string `json:"syncSource"` // defaults to server-side

	Address             string `json:"address"`
	Notes               string `json:"notes"`
	PatientCondition    string `json:"patientCondition"`
	SpecialRequirements string `json:"specialRequirements"`
}
