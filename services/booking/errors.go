package booking

import "fmt"

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ServiceError{
		Code:    "invalidBooking",
		Message: msg,
	}
}

// ErrPackageNotFound is returned by the direct submission path when the
// referenced package id is not in the catalog. The sync path resolves
// loosely instead.
var ErrPackageNotFound = &ServiceError{
	Code:    "packageNotFound",
	Message: "referenced package does not exist",
}
