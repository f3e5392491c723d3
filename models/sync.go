package models

import (
	"bytes"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number, a numeric string, or null. Valid is false
// when the field was absent, null, or unparsable, so callers can apply their
// own default instead of failing the whole payload.
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = int(n)
	f.Valid = true
	return nil
}

// Or returns the parsed value, or def when the field was missing or unparsable.
func (f FlexInt) Or(def int) int {
	if f.Valid {
		return f.Value
	}
	return def
}

// FlexFloat is the monetary counterpart of FlexInt; missing or unparsable
// values read as zero.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.Value = n
	f.Valid = true
	return nil
}

// LocalBooking is a booking captured in the client's local buffer before the
// authoritative store has seen it. The binding is deliberately loose: legacy
// client payloads carry package titles instead of ids and stringified numbers.
// Unknown fields are ignored.
type LocalBooking struct {
	BookingID string `json:"bookingId"` // Client-generated; becomes clientBookingId on the server
	PackageID string `json:"packageId"` // Canonical id, or a title-like string

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Guests   FlexInt `json:"guests"`
	Nights   FlexInt `json:"nights"`

	AddOns          []string `json:"addOns"`
	MedicalServices []string `json:"medicalServices"`

	PackageTotal         FlexFloat `json:"packageTotal"`
	AddOnsTotal          FlexFloat `json:"addOnsTotal"`
	MedicalServicesTotal FlexFloat `json:"medicalServicesTotal"`
	Total                FlexFloat `json:"total"`
	Deposit              FlexFloat `json:"deposit"`

	Address             string `json:"address"`
	Notes               string `json:"notes"`
	PatientCondition    string `json:"patientCondition"`
	SpecialRequirements string `json:"specialRequirements"`
}

// SyncItemError records a single failed batch item.
type SyncItemError struct {
	BookingID string `json:"bookingId"`
	Error     string `json:"error"`
}

// SyncReport is the per-batch reconciliation outcome. Produced fresh per run,
// never persisted (the last report is cached for the dashboard only).
type SyncReport struct {
	Synced     int             `json:"synced"`
	Duplicates int             `json:"duplicates"`
	Errors     []SyncItemError `json:"errors"`
}
