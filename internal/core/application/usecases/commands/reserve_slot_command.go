package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReserveSlotCommandIsNotConstructed = errors.New(
		"ReserveSlotCommand must be created via NewReserveSlotCommand constructor",
	)
)

// ReserveSlotCommand represents a request to reserve a place in a pickup slot
// for a sale order. The reserving client is derived from the order.
type ReserveSlotCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	orderID       kernel.UUID
	slotID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewReserveSlotCommand creates a command to reserve a pickup slot.
func NewReserveSlotCommand(reservationID, orderID, slotID kernel.UUID) (ReserveSlotCommand, error) {
	cmd := ReserveSlotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setOrderID(orderID),
		cmd.setSlotID(slotID),
	); err != nil {
		return ReserveSlotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveSlotCommand) Validate() error {
	return c.guard.Validate(ErrReserveSlotCommandIsNotConstructed)
}

// ReservationID returns the identifier for the reservation to create.
func (c ReserveSlotCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// OrderID returns the identifier of the sale order being picked up.
func (c ReserveSlotCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SlotID returns the identifier of the pickup slot to reserve.
func (c ReserveSlotCommand) SlotID() kernel.UUID {
	return c.slotID
}

func (c *ReserveSlotCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *ReserveSlotCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReserveSlotCommand) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return err
	}

	c.slotID = slotID
	return nil
}
