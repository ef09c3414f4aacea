package salesorder

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DocType is the document type name used in transition errors and by the
// docType-dispatched transition validator.
const DocType = "sale_order"

// Status represents the lifecycle state of a sale order.
// It implements a state machine with an explicit transition table so that
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──┬──> PartiallyDelivered ──> Delivered
//	  │           │       │            │
//	  │           │       └────────────┘
//	  │           │   (repeated partial deliveries)
//	  └───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. A transition request where the source
// and target state are equal is rejected, with the single exception of the
// PartiallyDelivered self-edge: each additional partial shipment re-enters the
// same state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first placed.
	Draft

	// Confirmed indicates the order has been accepted and may start shipping.
	Confirmed

	// PartiallyDelivered indicates at least one item has delivered quantity,
	// but not every item is fully delivered.
	PartiallyDelivered

	// Delivered indicates every item is fully delivered. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Draft:              "Draft",
		Confirmed:          "Confirmed",
		PartiallyDelivered: "PartiallyDelivered",
		Delivered:          "Delivered",
		Cancelled:          "Cancelled",
	}
}

// getTransitions returns the explicit transition table. A target state absent
// from the source's entry is illegal; there are no implicit edges.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:              {Confirmed, Cancelled},
		Confirmed:          {PartiallyDelivered, Delivered, Cancelled},
		PartiallyDelivered: {PartiallyDelivered, Delivered},
		Delivered:          {},
		Cancelled:          {},
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
		fmt.Errorf("%q is not a valid sale order status", name))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid sale order status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
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
