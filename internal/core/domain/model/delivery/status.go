package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DocType is the document type name used in transition errors and by the
// docType-dispatched transition validator.
const DocType = "delivery"

// Status represents the lifecycle state of a delivery record.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──┐
//	          ├──> PickedUp ───┴──> Delivered
//	          └──> Cancelled
//
// Delivered and Cancelled are terminal, and there are no implicit edges: a
// delivery cannot jump from Pending straight to Delivered.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly created delivery.
	Pending

	// InTransit indicates the delivery has left the warehouse with a carrier.
	InTransit

	// PickedUp indicates the client collected the goods at the facility.
	PickedUp

	// Delivered indicates the goods reached the client. Terminal.
	Delivered

	// Cancelled indicates the delivery was withdrawn before shipping. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {InTransit, PickedUp, Cancelled},
		InTransit: {Delivered},
		PickedUp:  {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status name, failing closed on unknown names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", name))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition to the target status is legal.
// Unknown source or target states fail closed.
func (s Status) CanTransitionTo(to Status) bool {
	targets, ok := getTransitions()[s]
	if !ok {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is legal, or an
// InvalidTransitionError otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError(DocType, s.String(), to.String())
	}
	return to, nil
}
