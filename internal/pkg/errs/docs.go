// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines two groups of errors:
//
// General validation errors shared by all components:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value violates its bounds
//   - ObjectNotFoundError: For when a referenced object cannot be found
//
// Business-rule and consistency errors specific to the engine:
//   - InvalidTransitionError / UnknownDocTypeError: Illegal document state changes
//   - DuplicateReservationError: An order already holds an active reservation
//   - CapacityExceededError: A pickup slot is fully booked
//   - PenaltyActiveError: A client is inside a no-show cool-down window
//   - ConcurrencyConflictError: A serializable transaction lost its conflict retries
//   - DataIntegrityError: An invariant that should be impossible was violated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrCapacityExceeded)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels; the HTTP adapter
// maps each sentinel to a status code. Only ConcurrencyConflictError is transient
// and safe to retry; every other kind propagates to the caller unchanged.
package errs
