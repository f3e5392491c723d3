// File: database/repository/booking/errors.go
package bookingRepo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no booking matches the given identifier.
var ErrNotFound = errors.New("booking not found")

// ValidationError reports a malformed record rejected before hitting the
// collection. Never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking: %s %s", e.Field, e.Reason)
}

// ConflictError reports a clientBookingId uniqueness violation. The unique
// index is the final arbiter; callers racing a concurrent insert see this
// instead of a raw driver error.
type ConflictError struct {
	ClientBookingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking with clientBookingId %q already exists", e.ClientBookingID)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsNotFound reports whether err means the booking does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
