package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Request (invoice) errors
	ErrRequestNotFound         = errors.New("request not found")
	ErrOriginalRequestNotFound = errors.New("original request not found")
	ErrInvalidRequestStatus    = errors.New("invalid request status")

	// Recurring payment errors
	ErrRecurringPaymentNotFound = errors.New("recurring payment not found")
	ErrMissingTransactionHash   = errors.New("missing transaction hash")

	// Webhook errors
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnknownSubStatus = errors.New("unknown subStatus")

	// User / compliance errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
