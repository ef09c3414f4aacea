package reservation

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DocType is the document type name used in transition errors and by the
// docType-dispatched transition validator.
const DocType = "pickup_reservation"

// Status represents the lifecycle state of a pickup reservation.
//
// State transitions:
//
//	Reserved ──> Waiting ──> Loading ──> Completed
//	    │           │           │
//	    │           │           └──> Cancelled
//	    ├───────────┴──> Cancelled
//	    └───────────┴──> NoShow
//
// Completed, Cancelled and NoShow are terminal. Reservations in Reserved,
// Waiting or Loading count against their slot's capacity; NoShow starts the
// client's penalty window.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Reserved is the initial status of a granted reservation.
	Reserved

	// Waiting indicates the client arrived and checked in at the facility.
	Waiting

	// Loading indicates the goods are being loaded.
	Loading

	// Completed indicates the pickup finished. Terminal.
	Completed

	// Cancelled indicates the reservation was withdrawn, freeing slot
	// capacity. Terminal.
	Cancelled

	// NoShow indicates the client missed the slot. Terminal; starts the
	// penalty cool-down.
	NoShow
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Reserved:  "Reserved",
		Waiting:   "Waiting",
		Loading:   "Loading",
		Completed: "Completed",
		Cancelled: "Cancelled",
		NoShow:    "NoShow",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Reserved:  {Waiting, Cancelled, NoShow},
		Waiting:   {Loading, Cancelled, NoShow},
		Loading:   {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
		NoShow:    {},
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
		fmt.Errorf("%q is not a valid reservation status", name))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid reservation status", int(s)))
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

// IsActive reports whether the reservation counts against slot capacity and
// blocks further reservations for its order.
func (s Status) IsActive() bool {
	switch s {
	case Reserved, Waiting, Loading:
		return true
	default:
		return false
	}
}

// ActiveStatuses returns the capacity-consuming statuses. Repositories use it
// to keep their counting queries aligned with the domain definition.
func ActiveStatuses() []Status {
	return []Status{Reserved, Waiting, Loading}
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
