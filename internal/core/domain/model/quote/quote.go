package quote

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
	// through the NewQuote or RestoreQuote factory methods.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
)

// Quote is a time-bound commercial document. Its validity date interacts with
// its status asymmetrically: quotes still in play past their validity are
// forced to Expired by the sweep, while quotes with a successful outcome only
// receive the expired flag and keep their state.
type Quote struct {
	id         kernel.UUID
	clientID   kernel.UUID
	status     Status
	validUntil time.Time
	isExpired  bool

	isConstructed bool
}

// NewQuote creates a quote in Draft status valid until the given date.
func NewQuote(id, clientID kernel.UUID, validUntil time.Time) (*Quote, error) {
	q := &Quote{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setClientID(clientID),
		q.setValidUntil(validUntil),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// RestoreQuote reconstructs a quote from persistence.
func RestoreQuote(id, clientID kernel.UUID, status Status, validUntil time.Time, isExpired bool) (*Quote, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	q, err := NewQuote(id, clientID, validUntil)
	if err != nil {
		return nil, err
	}

	q.status = status
	q.isExpired = isExpired
	return q, nil
}

// Validate ensures the Quote instance was properly constructed.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// ClientID returns the identifier of the client the quote was issued to.
func (q *Quote) ClientID() kernel.UUID {
	return q.clientID
}

// Status returns the current status of the quote.
func (q *Quote) Status() Status {
	return q.status
}

// ValidUntil returns the quote's validity date.
func (q *Quote) ValidUntil() time.Time {
	return q.validUntil
}

// IsExpired reports whether the quote carries the expired flag. For Accepted
// and Converted quotes this is the only trace of a lapsed validity date.
func (q *Quote) IsExpired() bool {
	return q.isExpired
}

// Send transitions the quote from Draft to Sent.
func (q *Quote) Send() error {
	return q.transition(Sent)
}

// StartNegotiation transitions the quote from Sent to Negotiating.
func (q *Quote) StartNegotiation() error {
	return q.transition(Negotiating)
}

// Accept records the client's acceptance.
func (q *Quote) Accept() error {
	return q.transition(Accepted)
}

// Convert records that the accepted quote became a sale order.
func (q *Quote) Convert() error {
	return q.transition(Converted)
}

// MarkLost records the client's refusal.
func (q *Quote) MarkLost() error {
	return q.transition(Lost)
}

// SweepExpiration applies the expiration policy as of the given time and
// reports whether the quote changed:
//
//   - quotes still in play (Draft, Sent, Negotiating) past validity are forced
//     to Expired;
//   - quotes with a successful outcome (Accepted, Converted) past validity get
//     isExpired=true and keep their state — the sweep must never revert a
//     successful outcome to an unsuccessful terminal state;
//   - Lost and Expired quotes are never touched.
func (q *Quote) SweepExpiration(asOf time.Time) (bool, error) {
	if !q.validUntil.Before(asOf) {
		return false, nil
	}

	switch {
	case q.status.IsSweepable():
		if err := q.transition(Expired); err != nil {
			return false, err
		}
		q.isExpired = true
		return true, nil

	case q.status.IsSuccessfulOutcome():
		if q.isExpired {
			return false, nil
		}
		q.isExpired = true
		return true, nil

	default:
		return false, nil
	}
}

func (q *Quote) transition(to Status) error {
	newStatus, err := q.status.TransitionTo(to)
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	q.clientID = clientID
	return nil
}

func (q *Quote) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}
	q.validUntil = validUntil
	return nil
}
