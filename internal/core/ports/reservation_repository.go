package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for pickup
// reservation aggregates. The counting and lookup methods back the capacity,
// duplicate and penalty checks of the reservation commands; they are only
// meaningful inside the serializable transaction those commands run in.
type ReservationRepository interface {
	// Add persists a new reservation aggregate to storage.
	Add(ctx context.Context, aggregate *reservation.PickupReservation) error

	// Update persists changes to an existing reservation aggregate.
	Update(ctx context.Context, aggregate *reservation.PickupReservation) error

	// Get retrieves a reservation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.PickupReservation, error)

	// GetActiveByOrder retrieves the order's reservation in an active status
	// (reserved, waiting or loading). Returns ErrObjectNotFound when the order
	// has none.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*reservation.PickupReservation, error)

	// GetNonCancelledByOrder retrieves the order's reservation in any status
	// except cancelled. Completed and no-show reservations still count: an
	// order gets one reservation for its lifetime unless that reservation was
	// cancelled. Returns ErrObjectNotFound when the order has none.
	GetNonCancelledByOrder(ctx context.Context, orderID kernel.UUID) (*reservation.PickupReservation, error)

	// CountActiveBySlot counts the reservations in an active status holding a
	// place in the slot.
	CountActiveBySlot(ctx context.Context, slotID kernel.UUID) (int, error)

	// GetLatestNoShowByClient retrieves the client's most recent no-show
	// reservation. Returns ErrObjectNotFound when the client has never
	// no-showed.
	GetLatestNoShowByClient(ctx context.Context, clientID kernel.UUID) (*reservation.PickupReservation, error)
}
