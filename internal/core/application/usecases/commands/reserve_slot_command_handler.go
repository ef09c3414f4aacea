package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/reservation"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ReserveSlotCommandHandler handles slot reservation under serializable
// isolation. Every check (duplicate reservation, no-show penalty, slot
// capacity) and the insert run inside one serializable transaction, so two
// concurrent reservations racing for a slot's last place cannot both commit.
//
// When the store aborts a transaction with a serialization failure, the
// handler retries the whole flow on a fresh transaction up to its attempt
// budget. Business rejections (duplicate, penalty, capacity) are never
// retried: re-running a rejected reservation cannot change the outcome.
type ReserveSlotCommandHandler struct {
	uowFactory    ReservationUoWFactory
	clock         ports.Clock
	penaltyWindow time.Duration
	maxAttempts   int
}

// NewReserveSlotCommandHandler creates a handler for slot reservation.
// penaltyWindow is how long a client is blocked after a no-show; maxAttempts
// bounds the serialization-failure retries and must be at least 1.
func NewReserveSlotCommandHandler(
	uowFactory ReservationUoWFactory, clock ports.Clock, penaltyWindow time.Duration, maxAttempts int,
) (ReserveSlotCommandHandler, error) {
	if maxAttempts < 1 {
		return ReserveSlotCommandHandler{}, errs.NewValueIsInvalidErrorWithCause("maxAttempts",
			fmt.Errorf("%d is not greater than 0", maxAttempts))
	}

	return ReserveSlotCommandHandler{
		uowFactory:    uowFactory,
		clock:         clock,
		penaltyWindow: penaltyWindow,
		maxAttempts:   maxAttempts,
	}, nil
}

// Handle reserves a place in the slot for the order. It returns
// DuplicateReservationError when the order already holds a non-cancelled
// reservation (completed and no-show ones included), PenaltyActiveError when the client is inside a no-show penalty
// window, CapacityExceededError when the slot is full, and
// ConcurrencyConflictError when the attempt budget is exhausted on
// serialization failures. A capacity rejection is always a real full slot;
// lost races surface as concurrency conflicts, never as capacity errors.
func (h ReserveSlotCommandHandler) Handle(ctx context.Context, cmd ReserveSlotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		err := h.reserve(ctx, cmd)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
		lastErr = err
	}

	return errs.NewConcurrencyConflictError(h.maxAttempts, lastErr)
}

func (h ReserveSlotCommandHandler) reserve(ctx context.Context, cmd ReserveSlotCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.BeginSerializable(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.SaleOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if order.Status() == salesorder.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("order %s is cancelled", order.ID()))
	}

	reservationRepo := uow.ReservationRepository()

	existing, err := reservationRepo.GetNonCancelledByOrder(ctx, cmd.OrderID())
	if err == nil {
		return errs.NewDuplicateReservationError(cmd.OrderID().String(), existing.ID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	now := h.clock.Now()

	noShow, err := reservationRepo.GetLatestNoShowByClient(ctx, order.ClientID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil {
		if until := noShow.PenaltyEnd(h.penaltyWindow); until.After(now) {
			return errs.NewPenaltyActiveError(order.ClientID().String(), until)
		}
	}

	slot, err := uow.SlotRepository().Get(ctx, cmd.SlotID())
	if err != nil {
		return err
	}

	activeCount, err := reservationRepo.CountActiveBySlot(ctx, cmd.SlotID())
	if err != nil {
		return err
	}
	if !slot.HasRoom(activeCount) {
		return errs.NewCapacityExceededError(slot.ID().String(), slot.Capacity())
	}

	res, err := reservation.NewPickupReservation(
		cmd.ReservationID(), cmd.SlotID(), cmd.OrderID(), order.ClientID(), now)
	if err != nil {
		return err
	}

	if err = reservationRepo.Add(ctx, res); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
