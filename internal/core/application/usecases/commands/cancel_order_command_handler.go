package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler handles sale order cancellation. An order that
// disappears must not keep holding a place in a pickup slot, so cancellation
// cascades to the order's active reservation inside the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderCancellationUoWFactory
	clock      ports.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderCancellationUoWFactory, clock ports.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels the order and its active reservation. Orders with delivery
// activity cannot be cancelled; the transition table rejects them.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.SaleOrderRepository()

	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	reservationRepo := uow.ReservationRepository()

	res, err := reservationRepo.GetActiveByOrder(ctx, order.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Nothing reserved; the order cancellation stands alone.
	case err != nil:
		return err
	default:
		if err = res.Cancel(h.clock.Now()); err != nil {
			return err
		}
		if err = reservationRepo.Update(ctx, res); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
