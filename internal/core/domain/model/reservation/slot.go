package reservation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrPickupSlotIsNotConstructed is returned when a PickupSlot instance was not
	// created through the NewPickupSlot factory method.
	ErrPickupSlotIsNotConstructed = errors.New("PickupSlot must be created via NewPickupSlot constructor")
)

// PickupSlot is a bounded time window at a facility with a fixed capacity:
// the maximum number of simultaneously active reservations. Capacity is the
// one contended resource of the engine and is protected exclusively by the
// transactional store's isolation, never by in-process locks.
type PickupSlot struct {
	id         kernel.UUID
	facilityID kernel.UUID
	startsAt   time.Time
	endsAt     time.Time
	capacity   int

	isConstructed bool
}

// NewPickupSlot creates a pickup slot for the given window and capacity.
func NewPickupSlot(id, facilityID kernel.UUID, startsAt, endsAt time.Time, capacity int) (*PickupSlot, error) {
	slot := &PickupSlot{
		isConstructed: true,
	}

	if err := errors.Join(
		slot.setID(id),
		slot.setFacilityID(facilityID),
		slot.setWindow(startsAt, endsAt),
		slot.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return slot, nil
}

// Validate ensures the PickupSlot instance was properly constructed.
func (s *PickupSlot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrPickupSlotIsNotConstructed
	}
	return nil
}

// ID returns the slot's unique identifier.
func (s *PickupSlot) ID() kernel.UUID {
	return s.id
}

// FacilityID returns the identifier of the facility the slot belongs to.
func (s *PickupSlot) FacilityID() kernel.UUID {
	return s.facilityID
}

// StartsAt returns the beginning of the slot window.
func (s *PickupSlot) StartsAt() time.Time {
	return s.startsAt
}

// EndsAt returns the end of the slot window.
func (s *PickupSlot) EndsAt() time.Time {
	return s.endsAt
}

// Capacity returns the maximum number of simultaneously active reservations.
func (s *PickupSlot) Capacity() int {
	return s.capacity
}

// HasRoom reports whether a new reservation fits given the count of active
// reservations read inside the same transaction.
func (s *PickupSlot) HasRoom(activeCount int) bool {
	return activeCount < s.capacity
}

func (s *PickupSlot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *PickupSlot) setFacilityID(facilityID kernel.UUID) error {
	if err := facilityID.Validate(); err != nil {
		return err
	}
	s.facilityID = facilityID
	return nil
}

func (s *PickupSlot) setWindow(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return errs.NewValueIsRequiredError("slot window")
	}
	if !endsAt.After(startsAt) {
		return errs.NewValueIsInvalidErrorWithCause("slot window",
			fmt.Errorf("window end %s is not after start %s", endsAt, startsAt))
	}
	s.startsAt = startsAt
	s.endsAt = endsAt
	return nil
}

func (s *PickupSlot) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}
