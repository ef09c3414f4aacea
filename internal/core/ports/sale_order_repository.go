// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
)

// SaleOrderRepository defines the persistence contract for sale order aggregates.
// Orders are always stored and rehydrated with their complete set of line items.
type SaleOrderRepository interface {
	// Add persists a new sale order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *salesorder.SaleOrder) error

	// Update persists changes to an existing sale order aggregate,
	// including its items' delivered and pending quantities.
	Update(ctx context.Context, aggregate *salesorder.SaleOrder) error

	// Get retrieves a sale order aggregate by its unique identifier.
	// Returns the complete order with all line items.
	Get(ctx context.Context, id kernel.UUID) (*salesorder.SaleOrder, error)
}
