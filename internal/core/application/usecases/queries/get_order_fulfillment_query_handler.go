package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderFulfillmentQueryHandler reads an order's fulfillment snapshot
// straight from the database.
type GetOrderFulfillmentQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderFulfillmentQueryHandler creates a handler for order fulfillment queries.
func NewGetOrderFulfillmentQueryHandler(db *gorm.DB) GetOrderFulfillmentQueryHandler {
	return GetOrderFulfillmentQueryHandler{db: db}
}

// Handle returns the order's status and per-item quantities. Returns
// ErrObjectNotFound when the order does not exist.
func (h GetOrderFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFulfillmentQuery,
) (GetOrderFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			i.id,
			i.product,
			i.ordered_qty,
			i.delivered_qty,
			i.pending_qty
		FROM sale_orders o
		JOIN sale_items i ON i.order_id = o.id
		WHERE o.id = ?
		ORDER BY i.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrderFulfillmentQueryResponse{
		OrderID: query.OrderID(),
		Items:   make([]ItemFulfillmentResponse, 0),
	}

	for rows.Next() {
		var status int
		var itemID uuid.UUID
		var item ItemFulfillmentResponse

		err = rows.Scan(
			&status,
			&itemID,
			&item.Product,
			&item.OrderedQty,
			&item.DeliveredQty,
			&item.PendingQty,
		)
		if err != nil {
			return GetOrderFulfillmentQueryResponse{}, err
		}

		saleItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return GetOrderFulfillmentQueryResponse{}, idErr
		}
		item.SaleItemID = saleItemID

		response.Status = salesorder.Status(status).String()
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderFulfillmentQueryResponse{}, err
	}

	if len(response.Items) == 0 {
		return GetOrderFulfillmentQueryResponse{},
			errs.NewObjectNotFoundError("sale order", query.OrderID().String())
	}

	return response, nil
}
