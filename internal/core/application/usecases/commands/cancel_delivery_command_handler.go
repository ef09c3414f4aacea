package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// CancelDeliveryCommandHandler handles delivery cancellation and reconciles
// the owning order in the same transaction, so the cancelled quantities roll
// back out of the delivered sums atomically.
type CancelDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	reconciler services.FulfillmentReconciler
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory FulfillmentUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewFulfillmentReconciler(),
	}
}

// Handle cancels the delivery and reconciles the owning sale order. A
// cancellation that would regress a delivered order fails on the order's
// transition table and rolls the whole transaction back.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.SaleOrderRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.Cancel(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	order, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	deliveries, err := deliveryRepo.GetAllByOrder(ctx, order.ID())
	if err != nil {
		return err
	}

	if err = h.reconciler.Reconcile(order, deliveries); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
