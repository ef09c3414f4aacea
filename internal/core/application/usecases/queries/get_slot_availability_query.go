package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetSlotAvailabilityQueryIsNotConstructed = errors.New(
		"GetSlotAvailabilityQuery must be created via NewGetSlotAvailabilityQuery constructor",
	)
)

// GetSlotAvailabilityQuery retrieves how much of a pickup slot's capacity is
// still free. The answer is advisory: only the serializable reservation
// transaction can promise a place.
type GetSlotAvailabilityQuery struct {
	slotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSlotAvailabilityQuery creates a query for one slot's availability.
func NewGetSlotAvailabilityQuery(slotID kernel.UUID) (GetSlotAvailabilityQuery, error) {
	if err := slotID.Validate(); err != nil {
		return GetSlotAvailabilityQuery{}, err
	}

	return GetSlotAvailabilityQuery{
		slotID: slotID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSlotAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetSlotAvailabilityQueryIsNotConstructed)
}

// SlotID returns the identifier of the slot to inspect.
func (q GetSlotAvailabilityQuery) SlotID() kernel.UUID {
	return q.slotID
}

// GetSlotAvailabilityQueryResponse reports a slot's capacity usage.
type GetSlotAvailabilityQueryResponse struct {
	SlotID      kernel.UUID
	Capacity    int
	ActiveCount int
	Remaining   int
}
