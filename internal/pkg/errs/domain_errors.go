package errs

import "errors"

// Sentinels shared by the usecase layers
var (
	// Catalog errors
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrSearchSessionNotFound = errors.New("search session not found")
	ErrCatalogUnavailable    = errors.New("catalog unavailable")
	ErrVehicleUnavailable    = errors.New("vehicle not available for booking")

	// Reservation errors
	ErrDraftNotFound = errors.New("reservation draft not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
