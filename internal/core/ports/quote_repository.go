package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetExpirationCandidates retrieves quotes past their validity date that
	// the expiration sweep has not flagged yet.
	GetExpirationCandidates(ctx context.Context, asOf time.Time) ([]*quote.Quote, error)
}
