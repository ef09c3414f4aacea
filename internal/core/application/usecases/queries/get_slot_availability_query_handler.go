package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/reservation"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSlotAvailabilityQueryHandler counts a slot's active reservations against
// its capacity.
type GetSlotAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetSlotAvailabilityQueryHandler creates a handler for slot availability queries.
func NewGetSlotAvailabilityQueryHandler(db *gorm.DB) GetSlotAvailabilityQueryHandler {
	return GetSlotAvailabilityQueryHandler{db: db}
}

// Handle returns the slot's capacity, active reservation count and remaining
// places. Returns ErrObjectNotFound when the slot does not exist.
func (h GetSlotAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetSlotAvailabilityQuery,
) (GetSlotAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSlotAvailabilityQueryResponse{}, err
	}

	var capacity, activeCount int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.capacity,
			(
				SELECT COUNT(*)
				FROM pickup_reservations r
				WHERE r.slot_id = s.id AND r.status IN (?, ?, ?)
			)
		FROM pickup_slots s
		WHERE s.id = ?
	`, int(reservation.Reserved), int(reservation.Waiting), int(reservation.Loading),
		query.SlotID().Bytes()).Row()

	if err := row.Scan(&capacity, &activeCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetSlotAvailabilityQueryResponse{},
				errs.NewObjectNotFoundError("pickup slot", query.SlotID().String())
		}
		return GetSlotAvailabilityQueryResponse{}, err
	}

	remaining := capacity - activeCount
	if remaining < 0 {
		remaining = 0
	}

	return GetSlotAvailabilityQueryResponse{
		SlotID:      query.SlotID(),
		Capacity:    capacity,
		ActiveCount: activeCount,
		Remaining:   remaining,
	}, nil
}
