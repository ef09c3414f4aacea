// Package reservationrepo provides data transfer objects and mapping
// functions for pickup reservation and pickup slot persistence. The counting
// queries here back the capacity check of the reservation manager and rely on
// the serializable transaction the unit of work runs them in.
package reservationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting pickup
// reservation aggregates.
type ReservationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SlotID    uuid.UUID `gorm:"type:uuid;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	Status    int       `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "pickup_reservations"
}

// SlotDTO represents the database structure for persisting pickup slots.
type SlotDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacilityID uuid.UUID `gorm:"type:uuid;index"`
	StartsAt   time.Time
	EndsAt     time.Time
	Capacity   int
}

// TableName specifies the database table name for slot entities.
func (SlotDTO) TableName() string {
	return "pickup_slots"
}

func fromDomain(aggregate *reservation.PickupReservation) ReservationDTO {
	return ReservationDTO{
		ID:        aggregate.ID().Bytes(),
		SlotID:    aggregate.SlotID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		Status:    int(aggregate.Status()),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto ReservationDTO) (*reservation.PickupReservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	slotID, err := kernel.UUIDFromBytes(dto.SlotID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return reservation.RestorePickupReservation(
		id, slotID, orderID, clientID, reservation.Status(dto.Status), dto.UpdatedAt)
}

func slotFromDomain(slot *reservation.PickupSlot) SlotDTO {
	return SlotDTO{
		ID:         slot.ID().Bytes(),
		FacilityID: slot.FacilityID().Bytes(),
		StartsAt:   slot.StartsAt(),
		EndsAt:     slot.EndsAt(),
		Capacity:   slot.Capacity(),
	}
}

func slotToDomain(dto SlotDTO) (*reservation.PickupSlot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facilityID, err := kernel.UUIDFromBytes(dto.FacilityID[:])
	if err != nil {
		return nil, err
	}

	return reservation.NewPickupSlot(id, facilityID, dto.StartsAt, dto.EndsAt, dto.Capacity)
}
