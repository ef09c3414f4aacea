package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reservation"
)

// SlotRepository defines the persistence contract for pickup slots.
type SlotRepository interface {
	// Add persists a new pickup slot to storage.
	Add(ctx context.Context, slot *reservation.PickupSlot) error

	// Get retrieves a pickup slot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.PickupSlot, error)
}
