// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the aggregates and read with raw SQL, as reads need
// neither the transition tables nor the unit of work.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderFulfillmentQueryIsNotConstructed = errors.New(
		"GetOrderFulfillmentQuery must be created via NewGetOrderFulfillmentQuery constructor",
	)
)

// GetOrderFulfillmentQuery retrieves a sale order's fulfillment state: its
// derived status and the per-item delivered and pending quantities.
type GetOrderFulfillmentQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderFulfillmentQuery creates a query for one order's fulfillment state.
func NewGetOrderFulfillmentQuery(orderID kernel.UUID) (GetOrderFulfillmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderFulfillmentQuery{}, err
	}

	return GetOrderFulfillmentQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFulfillmentQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to inspect.
func (q GetOrderFulfillmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ItemFulfillmentResponse is one line of the order with its quantities.
type ItemFulfillmentResponse struct {
	SaleItemID   kernel.UUID
	Product      string
	OrderedQty   int
	DeliveredQty int
	PendingQty   int
}

// GetOrderFulfillmentQueryResponse is the order's fulfillment snapshot.
type GetOrderFulfillmentQueryResponse struct {
	OrderID kernel.UUID
	Status  string
	Items   []ItemFulfillmentResponse
}
