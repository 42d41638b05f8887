package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Field errors
	ErrFieldNotFound    = errors.New("field not found")
	ErrDistrictNotFound = errors.New("district not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
