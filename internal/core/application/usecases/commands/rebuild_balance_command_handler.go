package commands

import (
	"context"

	"github.com/shopspring/decimal"
)

// RebuildResult reports the outcome of one balance rebuild: the cached value
// before the pass, the value replayed from the ledger, their difference and
// the number of entries processed. A zero difference means no drift.
type RebuildResult struct {
	Previous         decimal.Decimal
	Rebuilt          decimal.Decimal
	Difference       decimal.Decimal
	EntriesProcessed int
}

// HasDrift reports whether the cached balance disagreed with the ledger.
func (r RebuildResult) HasDrift() bool {
	return !r.Difference.IsZero()
}

// RebuildBalanceCommandHandler recomputes a client's balance by replaying
// their ledger entries in recording order. The rebuild is idempotent: a second
// run over an unchanged ledger reports zero drift and writes nothing.
type RebuildBalanceCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRebuildBalanceCommandHandler creates a handler for balance rebuilds.
func NewRebuildBalanceCommandHandler(uowFactory LedgerUoWFactory) RebuildBalanceCommandHandler {
	return RebuildBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replays the client's ledger and, unless the command is a dry run,
// overwrites the cached balance with the rebuilt value. The read and the
// write share one transaction so a concurrent append cannot slip between
// them.
func (h RebuildBalanceCommandHandler) Handle(
	ctx context.Context, cmd RebuildBalanceCommand,
) (RebuildResult, error) {
	if err := cmd.Validate(); err != nil {
		return RebuildResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RebuildResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()

	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return RebuildResult{}, err
	}

	entries, err := uow.LedgerEntryRepository().GetAllByClient(ctx, cmd.ClientID(), cmd.Mode())
	if err != nil {
		return RebuildResult{}, err
	}

	rebuilt := decimal.Zero
	for _, entry := range entries {
		rebuilt = rebuilt.Add(entry.Amount())
	}

	result := RebuildResult{
		Previous:         c.CachedBalance(),
		Rebuilt:          rebuilt,
		Difference:       rebuilt.Sub(c.CachedBalance()),
		EntriesProcessed: len(entries),
	}

	if cmd.DryRun() || !result.HasDrift() {
		return result, uow.Commit(ctx)
	}

	c.SetCachedBalance(rebuilt)
	if err = clientRepo.Update(ctx, c); err != nil {
		return RebuildResult{}, err
	}

	return result, uow.Commit(ctx)
}
