package reservation

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrReservationIsNotConstructed is returned when a PickupReservation instance was
	// not created through the NewPickupReservation or RestorePickupReservation factory
	// methods.
	ErrReservationIsNotConstructed = errors.New(
		"PickupReservation must be created via NewPickupReservation constructor")
)

// PickupReservation links one sale order to one pickup slot. At most one
// non-cancelled reservation may exist per order at any time; that uniqueness
// and the slot's capacity bound are enforced by the reservation manager inside
// a serializable transaction, not here.
//
// updatedAt is refreshed on every status change; the no-show penalty window is
// measured from the updatedAt of the NoShow transition.
type PickupReservation struct {
	id        kernel.UUID
	slotID    kernel.UUID
	orderID   kernel.UUID
	clientID  kernel.UUID
	status    Status
	updatedAt time.Time

	isConstructed bool
}

// NewPickupReservation creates a reservation in Reserved status.
func NewPickupReservation(id, slotID, orderID, clientID kernel.UUID, now time.Time) (*PickupReservation, error) {
	r := &PickupReservation{
		status:        Reserved,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setSlotID(slotID),
		r.setOrderID(orderID),
		r.setClientID(clientID),
		r.setUpdatedAt(now),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestorePickupReservation reconstructs a reservation from persistence.
func RestorePickupReservation(
	id, slotID, orderID, clientID kernel.UUID, status Status, updatedAt time.Time,
) (*PickupReservation, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r, err := NewPickupReservation(id, slotID, orderID, clientID, updatedAt)
	if err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the PickupReservation instance was properly constructed.
func (r *PickupReservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *PickupReservation) ID() kernel.UUID {
	return r.id
}

// SlotID returns the identifier of the reserved pickup slot.
func (r *PickupReservation) SlotID() kernel.UUID {
	return r.slotID
}

// OrderID returns the identifier of the sale order being picked up.
func (r *PickupReservation) OrderID() kernel.UUID {
	return r.orderID
}

// ClientID returns the identifier of the client who reserved.
func (r *PickupReservation) ClientID() kernel.UUID {
	return r.clientID
}

// Status returns the current status of the reservation.
func (r *PickupReservation) Status() Status {
	return r.status
}

// UpdatedAt returns the timestamp of the last status change.
func (r *PickupReservation) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsActive reports whether the reservation consumes slot capacity.
func (r *PickupReservation) IsActive() bool {
	return r.status.IsActive()
}

// CheckIn transitions the reservation from Reserved to Waiting.
func (r *PickupReservation) CheckIn(now time.Time) error {
	return r.transition(Waiting, now)
}

// StartLoading transitions the reservation from Waiting to Loading.
func (r *PickupReservation) StartLoading(now time.Time) error {
	return r.transition(Loading, now)
}

// Complete finishes the pickup.
func (r *PickupReservation) Complete(now time.Time) error {
	return r.transition(Completed, now)
}

// Cancel withdraws the reservation, freeing slot capacity for the next
// serializable transaction that counts active reservations.
func (r *PickupReservation) Cancel(now time.Time) error {
	return r.transition(Cancelled, now)
}

// MarkNoShow records that the client missed the slot and starts the penalty
// window from now.
func (r *PickupReservation) MarkNoShow(now time.Time) error {
	return r.transition(NoShow, now)
}

// PenaltyEnd returns the end of the penalty window this reservation imposes,
// or the zero time if the reservation is not a no-show.
func (r *PickupReservation) PenaltyEnd(window time.Duration) time.Time {
	if r.status != NoShow {
		return time.Time{}
	}
	return r.updatedAt.Add(window)
}

func (r *PickupReservation) transition(to Status, now time.Time) error {
	newStatus, err := r.status.TransitionTo(to)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.updatedAt = now
	return nil
}

func (r *PickupReservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *PickupReservation) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return err
	}
	r.slotID = slotID
	return nil
}

func (r *PickupReservation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *PickupReservation) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	r.clientID = clientID
	return nil
}

func (r *PickupReservation) setUpdatedAt(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	r.updatedAt = now
	return nil
}
