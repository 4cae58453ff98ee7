package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers.
var (
	// Missing rule or calendar id. Never retryable; callers surface an empty result.
	ErrConfiguration = errors.New("configuration error")

	// Calendar or store unreachable. Retryable by the caller.
	ErrExternalService = errors.New("external service error")

	// Slot taken, invite already used, invite in an invalid state.
	ErrBusinessRule = errors.New("business rule violation")

	// Booking record exists but the calendar event could not be created.
	ErrConsistency = errors.New("consistency error")

	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")

	// Idempotency
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
