package errs

import "errors"

// Error taxonomy shared by the ledger, the facade and the HTTP layer
var (
	// Unknown product/location key, removed stock record or unknown reservation
	ErrNotFound = errors.New("not found")

	// Reserve requested more than available
	ErrInsufficientStock = errors.New("insufficient stock")

	// Transition attempted from a state that does not allow it
	ErrInvalidState = errors.New("invalid state")

	// Adjustment would drive on-hand below reserved (never clamped)
	ErrInvalidAdjustment = errors.New("invalid adjustment")

	// Malformed input rejected before touching storage
	ErrValidation = errors.New("validation failed")

	// Caller lacks the role required by the operation
	ErrForbidden = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Code returns a stable machine-readable code for err, used in per-item results.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrNotFound):
		return "NOT_FOUND"
	case Is(err, ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case Is(err, ErrInvalidAdjustment):
		return "INVALID_ADJUSTMENT"
	case Is(err, ErrValidation):
		return "VALIDATION"
	case Is(err, ErrForbidden):
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}
