package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Quota errors
	ErrQuotaExceeded    = errors.New("monthly api quota exhausted")
	ErrQuotaStoreFailed = errors.New("quota store operation failed")

	// Provider errors
	ErrProviderUnavailable = errors.New("flight provider unavailable")

	// Session errors
	ErrNoSession = errors.New("no search session")
)
