package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	dlv "fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	order := buildConfirmedOrder(t, 10)
	d := buildDelivery(t, order, 4)

	cmd, err := commands.NewCancelDeliveryCommand(d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockSaleOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("SaleOrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		deliveryRepo.On("Update", ctx, d).Return(nil).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		deliveryRepo.On("GetAllByOrder", ctx, order.ID()).Return([]*dlv.Delivery{d}, nil).Once(),
		orderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, d.IsCancelled())
	assert.Equal(t, salesorder.Confirmed, order.Status())
	assert.Equal(t, 0, order.Items()[0].DeliveredQty())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryCommandHandler_Handle_DeliveredDeliveryRejected(t *testing.T) {
	ctx := t.Context()

	order := buildConfirmedOrder(t, 10)
	d := buildDelivery(t, order, 10)
	require.NoError(t, d.Dispatch())
	require.NoError(t, d.MarkDelivered())

	cmd, err := commands.NewCancelDeliveryCommand(d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockSaleOrderRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("SaleOrderRepository").Return(orderRepo).Once(),
		deliveryRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelDeliveryCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	handler := commands.NewCancelDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
