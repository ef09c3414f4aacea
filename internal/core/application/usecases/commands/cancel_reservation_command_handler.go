package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CancelReservationCommandHandler handles reservation cancellation. Freed
// capacity becomes visible to the next reservation transaction that counts
// active reservations; no compensation of past counts is needed.
type CancelReservationCommandHandler struct {
	uowFactory ReservationLifecycleUoWFactory
	clock      ports.Clock
}

// NewCancelReservationCommandHandler creates a handler for reservation cancellation.
func NewCancelReservationCommandHandler(
	uowFactory ReservationLifecycleUoWFactory, clock ports.Clock,
) CancelReservationCommandHandler {
	return CancelReservationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels the reservation. Loading reservations can still be
// cancelled; completed and no-show ones cannot.
func (h CancelReservationCommandHandler) Handle(ctx context.Context, cmd CancelReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()

	res, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = res.Cancel(h.clock.Now()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, res); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
