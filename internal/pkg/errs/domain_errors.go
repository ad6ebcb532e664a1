package errs

import "errors"

// Sentinels shared by usecase layers and handlers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	// Fast allocation store (Redis) errors are transient and never a business outcome
	ErrAllocationStoreUnavailable = errors.New("allocation store unavailable")
)
