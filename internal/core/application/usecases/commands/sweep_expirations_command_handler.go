package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// SweepExpirationsCommandHandler applies the quote expiration policy in bulk.
// Quotes still in play past their validity are forced to expired; quotes with
// a successful outcome only receive the expired flag. The sweep never reverts
// an accepted or converted quote.
type SweepExpirationsCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

// NewSweepExpirationsCommandHandler creates a handler for the expiration sweep.
func NewSweepExpirationsCommandHandler(
	uowFactory QuoteUoWFactory, clock ports.Clock,
) SweepExpirationsCommandHandler {
	return SweepExpirationsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle sweeps every expiration candidate and returns how many quotes
// changed. Re-running the sweep over an unchanged set sweeps nothing.
func (h SweepExpirationsCommandHandler) Handle(ctx context.Context, cmd SweepExpirationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	candidates, err := quoteRepo.GetExpirationCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, q := range candidates {
		changed, err := q.SweepExpiration(now)
		if err != nil {
			return 0, err
		}
		if !changed {
			continue
		}

		if err = quoteRepo.Update(ctx, q); err != nil {
			return 0, err
		}
		swept++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return swept, nil
}
