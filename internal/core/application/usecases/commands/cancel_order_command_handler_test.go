package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reservation"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CascadesToReservation(t *testing.T) {
	ctx := t.Context()

	order := buildConfirmedOrder(t, 10)
	res, err := reservation.NewPickupReservation(
		kernel.NewUUID(), kernel.NewUUID(), order.ID(), order.ClientID(),
		reservationNow.Add(-time.Hour))
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockSaleOrderRepository)
	reservationRepo := new(MockReservationRepository)
	uow := new(MockOrderCancellationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("GetActiveByOrder", ctx, order.ID()).Return(res, nil).Once(),
		reservationRepo.On("Update", ctx, res).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: reservationNow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, salesorder.Cancelled, order.Status())
	assert.Equal(t, reservation.Cancelled, res.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NoReservation(t *testing.T) {
	ctx := t.Context()

	order := buildConfirmedOrder(t, 10)

	cmd, err := commands.NewCancelOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockSaleOrderRepository)
	reservationRepo := new(MockReservationRepository)
	uow := new(MockOrderCancellationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, order).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("GetActiveByOrder", ctx, order.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: reservationNow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, salesorder.Cancelled, order.Status())
}

func TestCancelOrderCommandHandler_Handle_PartiallyDeliveredRejected(t *testing.T) {
	ctx := t.Context()

	order := buildConfirmedOrder(t, 10)
	require.NoError(t, order.ApplyFulfillmentStatus(salesorder.PartiallyDelivered))

	cmd, err := commands.NewCancelOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockSaleOrderRepository)
	uow := new(MockOrderCancellationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SaleOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: reservationNow})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockOrderCancellationUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: reservationNow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
