package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkNoShowCommandIsNotConstructed = errors.New(
		"MarkNoShowCommand must be created via NewMarkNoShowCommand constructor",
	)
)

// MarkNoShowCommand represents a request to record that the client missed
// their slot. The no-show starts the client's penalty window.
type MarkNoShowCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNoShowCommand creates a command to mark a reservation as a no-show.
func NewMarkNoShowCommand(reservationID kernel.UUID) (MarkNoShowCommand, error) {
	cmd := MarkNoShowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReservationID(reservationID); err != nil {
		return MarkNoShowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNoShowCommand) Validate() error {
	return c.guard.Validate(ErrMarkNoShowCommandIsNotConstructed)
}

// ReservationID returns the identifier of the reservation to mark.
func (c MarkNoShowCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c *MarkNoShowCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}
