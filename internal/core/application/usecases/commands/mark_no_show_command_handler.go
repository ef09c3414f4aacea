package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// MarkNoShowCommandHandler handles no-show marking. Only reserved and waiting
// reservations can be marked: a client already loading did show up.
type MarkNoShowCommandHandler struct {
	uowFactory ReservationLifecycleUoWFactory
	clock      ports.Clock
}

// NewMarkNoShowCommandHandler creates a handler for no-show marking.
func NewMarkNoShowCommandHandler(
	uowFactory ReservationLifecycleUoWFactory, clock ports.Clock,
) MarkNoShowCommandHandler {
	return MarkNoShowCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle marks the reservation as a no-show. The penalty window runs from the
// moment of marking, not from the slot's end.
func (h MarkNoShowCommandHandler) Handle(ctx context.Context, cmd MarkNoShowCommand) error {
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

	if err = res.MarkNoShow(h.clock.Now()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, res); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
