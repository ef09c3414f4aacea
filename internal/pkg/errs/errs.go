package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for classification with errors.Is. Every concrete error type
// in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrUnknownDocType       = errors.New("unknown document type")
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrPenaltyActive        = errors.New("penalty active")
	ErrConcurrencyConflict  = errors.New("concurrency conflict")
	ErrDataIntegrity        = errors.New("data integrity violation")
)

// sanitize strips line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value violated its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates that a requested document state change is not
// permitted by the document type's transition table. It is a client error and
// must never be retried.
type InvalidTransitionError struct {
	DocType string
	From    string
	To      string
	Cause   error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given document
// type and state pair.
func NewInvalidTransitionError(docType, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{DocType: docType, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an
// underlying cause.
func NewInvalidTransitionErrorWithCause(docType, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{DocType: docType, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s from %s to %s (cause: %s)",
			ErrInvalidTransition, e.DocType, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s from %s to %s", ErrInvalidTransition, e.DocType, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnknownDocTypeError indicates that a transition was requested for a document type
// the validator does not know. Unknown types fail closed.
type UnknownDocTypeError struct {
	DocType string
}

// NewUnknownDocTypeError creates an UnknownDocTypeError for the given type name.
func NewUnknownDocTypeError(docType string) *UnknownDocTypeError {
	return &UnknownDocTypeError{DocType: docType}
}

func (e *UnknownDocTypeError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnknownDocType, e.DocType))
}

func (e *UnknownDocTypeError) Unwrap() error {
	return ErrUnknownDocType
}

// DuplicateReservationError indicates that an order already holds an active
// pickup reservation. At most one non-cancelled reservation may exist per order.
type DuplicateReservationError struct {
	OrderID       string
	ReservationID string
}

// NewDuplicateReservationError creates a DuplicateReservationError naming the
// conflicting reservation.
func NewDuplicateReservationError(orderID, reservationID string) *DuplicateReservationError {
	return &DuplicateReservationError{OrderID: orderID, ReservationID: reservationID}
}

func (e *DuplicateReservationError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s already holds active reservation %s",
		ErrDuplicateReservation, e.OrderID, e.ReservationID))
}

func (e *DuplicateReservationError) Unwrap() error {
	return ErrDuplicateReservation
}

// CapacityExceededError indicates that a pickup slot is fully booked.
type CapacityExceededError struct {
	SlotID   string
	Capacity int
}

// NewCapacityExceededError creates a CapacityExceededError for the given slot.
func NewCapacityExceededError(slotID string, capacity int) *CapacityExceededError {
	return &CapacityExceededError{SlotID: slotID, Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: slot %s is fully booked (capacity %d)",
		ErrCapacityExceeded, e.SlotID, e.Capacity))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PenaltyActiveError indicates that a client is inside a no-show cool-down window
// and cannot reserve. Until reports when the penalty ends so callers can surface
// the remediation date.
type PenaltyActiveError struct {
	ClientID string
	Until    time.Time
}

// NewPenaltyActiveError creates a PenaltyActiveError ending at the given time.
func NewPenaltyActiveError(clientID string, until time.Time) *PenaltyActiveError {
	return &PenaltyActiveError{ClientID: clientID, Until: until}
}

func (e *PenaltyActiveError) Error() string {
	return sanitize(fmt.Sprintf("%s: client %s cannot reserve until %s",
		ErrPenaltyActive, e.ClientID, e.Until.Format(time.RFC3339)))
}

func (e *PenaltyActiveError) Unwrap() error {
	return ErrPenaltyActive
}

// ConcurrencyConflictError indicates that a transaction lost a serialization
// conflict and its bounded retries were exhausted. It is transient: the caller
// may safely re-issue the whole operation.
type ConcurrencyConflictError struct {
	Attempts int
	Cause    error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError after the given
// number of attempts.
func NewConcurrencyConflictError(attempts int, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Attempts: attempts, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: gave up after %d attempts (cause: %s)",
			ErrConcurrencyConflict, e.Attempts, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: gave up after %d attempts", ErrConcurrencyConflict, e.Attempts))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// SerializationFailureError marks a single transaction abort caused by a
// serialization conflict in the store. Retry loops detect it through
// ErrConcurrencyConflict and re-run the transaction; only when the attempt
// budget runs out does it get promoted to a ConcurrencyConflictError.
type SerializationFailureError struct {
	Cause error
}

// NewSerializationFailureError creates a SerializationFailureError wrapping the
// store's abort error.
func NewSerializationFailureError(cause error) *SerializationFailureError {
	return &SerializationFailureError{Cause: cause}
}

func (e *SerializationFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: transaction aborted (cause: %s)", ErrConcurrencyConflict, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: transaction aborted", ErrConcurrencyConflict))
}

func (e *SerializationFailureError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConcurrencyConflict, e.Cause}
	}
	return []error{ErrConcurrencyConflict}
}

// DataIntegrityError indicates that an invariant which should be impossible to
// violate was violated, such as a delivered quantity exceeding the ordered
// quantity. It is a server error: logged loudly, never silently corrected.
type DataIntegrityError struct {
	Invariant string
	Cause     error
}

// NewDataIntegrityError creates a DataIntegrityError naming the violated invariant.
func NewDataIntegrityError(invariant string) *DataIntegrityError {
	return &DataIntegrityError{Invariant: invariant}
}

// NewDataIntegrityErrorWithCause creates a DataIntegrityError wrapping an underlying cause.
func NewDataIntegrityErrorWithCause(invariant string, cause error) *DataIntegrityError {
	return &DataIntegrityError{Invariant: invariant, Cause: cause}
}

func (e *DataIntegrityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDataIntegrity, e.Invariant, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDataIntegrity, e.Invariant))
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
