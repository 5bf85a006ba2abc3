/*
errors.go - Centralized error types for the credit engine

PURPOSE:
  Every business-rule failure the engine can report, in one place.
  Validation errors are rejected before any state mutation; not-found
  errors map to 404 at the API; transient store errors (ledger.ErrTransient)
  are retried and then surfaced as a warning, never committed.
*/
package credit

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrExpenseNotFound  = errors.New("expense not found")

	// ErrInvalidAmount rejects non-positive amounts before the lifecycle
	// engine ever runs.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrMissingField is a required selection or value left empty.
	ErrMissingField = errors.New("required field missing")

	// ErrInvalidInput covers remaining validation failures (unknown
	// category, down payment above price, bad status value).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateLocation: lot codes are unique in inventory.
	ErrDuplicateLocation = errors.New("location code already registered")

	// ErrLocationUnavailable: sales only start on Available lots.
	ErrLocationUnavailable = errors.New("location is not available for sale")

	// ErrLocationInUse enforces at most one non-archived contract per lot.
	ErrLocationInUse = errors.New("location already has a contract")

	// ErrNotLatestPayment: only the most recent payment row may be deleted.
	ErrNotLatestPayment = errors.New("only the most recent payment can be deleted")
)

// IsNotFound reports whether err refers to a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLocationNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrVendorNotFound) ||
		errors.Is(err, ErrExpenseNotFound)
}

// IsValidation reports whether err is invalid client input (no state
// was mutated).
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateLocation) ||
		errors.Is(err, ErrLocationUnavailable) ||
		errors.Is(err, ErrLocationInUse) ||
		errors.Is(err, ErrNotLatestPayment)
}
