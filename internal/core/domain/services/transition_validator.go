package services

import (
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/quote"
	"fulfillment/internal/core/domain/model/reservation"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
)

// TransitionValidator answers whether a state change is legal for a given
// document type. It is pure and deterministic: the per-type transition tables
// live with their Status enums, and this service only dispatches on the
// document type name used by external callers.
//
// Unknown document types and unknown state names fail closed: they are
// rejected rather than defaulting to permissive. A request where the source
// and target state are equal is rejected unless the type's table carries an
// explicit self-edge; idempotent no-op calls are the caller's concern.
type TransitionValidator struct{}

// NewTransitionValidator creates a transition validator.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate returns nil when the transition from one named state to another is
// legal for the document type, an UnknownDocTypeError for unrecognized types,
// and an InvalidTransitionError otherwise.
func (v TransitionValidator) Validate(docType, fromState, toState string) error {
	switch docType {
	case salesorder.DocType:
		from, err := salesorder.StatusFromString(fromState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		to, err := salesorder.StatusFromString(toState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		_, err = from.TransitionTo(to)
		return err

	case delivery.DocType:
		from, err := delivery.StatusFromString(fromState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		to, err := delivery.StatusFromString(toState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		_, err = from.TransitionTo(to)
		return err

	case quote.DocType:
		from, err := quote.StatusFromString(fromState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		to, err := quote.StatusFromString(toState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		_, err = from.TransitionTo(to)
		return err

	case reservation.DocType:
		from, err := reservation.StatusFromString(fromState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		to, err := reservation.StatusFromString(toState)
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(docType, fromState, toState, err)
		}
		_, err = from.TransitionTo(to)
		return err

	default:
		return errs.NewUnknownDocTypeError(docType)
	}
}
