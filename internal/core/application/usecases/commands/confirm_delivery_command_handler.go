package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation. The status
// change and the reconciliation of the owning order commit atomically: a
// confirmed delivery is never visible without its effect on the order's
// delivered and pending quantities.
type ConfirmDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	reconciler services.FulfillmentReconciler
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory FulfillmentUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewFulfillmentReconciler(),
	}
}

// Handle confirms the delivery and reconciles the owning sale order.
// Confirmation is only legal from the in_transit and picked_up statuses; the
// transition table rejects everything else.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = d.MarkDelivered(); err != nil {
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
