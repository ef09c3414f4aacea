package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
)

// LedgerEntryRepository defines the persistence contract for ledger entries.
// The ledger is append-only: entries are added, never updated or deleted.
type LedgerEntryRepository interface {
	// Add appends a new entry to the client's ledger.
	Add(ctx context.Context, entry *ledger.Entry) error

	// GetAllByClient retrieves the client's entries ordered by recording time.
	// ModeAll returns the full ledger; ModeOfficial and ModeManagement filter
	// to the matching accounting mode.
	GetAllByClient(ctx context.Context, clientID kernel.UUID, mode ledger.Mode) ([]*ledger.Entry, error)
}
