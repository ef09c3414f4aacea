package quote

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DocType is the document type name used in transition errors and by the
// docType-dispatched transition validator.
const DocType = "quote"

// Status represents the lifecycle state of a commercial quote.
//
// State transitions:
//
//	Draft ──> Sent ──┬──> Negotiating ──┬──> Accepted ──> Converted
//	  │              ├──────────────────┤
//	  │              │                  ├──> Lost
//	  └──────────────┴──────────────────┴──> Expired
//
// Expired, Converted and Lost are terminal. Accepted, Converted and Lost are
// outcomes decided by people; the automated expiration sweep must never move a
// document out of them. Accepted and Converted quotes past their validity date
// are flagged expired without a state change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status of a quote being prepared.
	Draft

	// Sent indicates the quote was delivered to the client.
	Sent

	// Negotiating indicates the client responded and terms are being discussed.
	Negotiating

	// Accepted indicates the client accepted the quote. A successful outcome.
	Accepted

	// Expired indicates the quote lapsed without an outcome. Terminal.
	Expired

	// Converted indicates the quote became a sale order. Terminal.
	Converted

	// Lost indicates the client declined. Terminal.
	Lost
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Draft:       "Draft",
		Sent:        "Sent",
		Negotiating: "Negotiating",
		Accepted:    "Accepted",
		Expired:     "Expired",
		Converted:   "Converted",
		Lost:        "Lost",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:       {Sent, Expired},
		Sent:        {Negotiating, Accepted, Expired, Lost},
		Negotiating: {Accepted, Expired, Lost},
		Accepted:    {Converted},
		Expired:     {},
		Converted:   {},
		Lost:        {},
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
		fmt.Errorf("%q is not a valid quote status", name))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid quote status", int(s)))
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

// IsSweepable reports whether the automated expiration sweep may force this
// status to Expired. Accepted, Converted and Lost are protected outcomes.
func (s Status) IsSweepable() bool {
	switch s {
	case Draft, Sent, Negotiating:
		return true
	default:
		return false
	}
}

// IsSuccessfulOutcome reports whether the status is a successful terminal
// outcome that only gets flagged, never reverted, when past validity.
func (s Status) IsSuccessfulOutcome() bool {
	return s == Accepted || s == Converted
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
