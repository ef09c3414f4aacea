// Package orderrepo provides data transfer objects and mapping functions for
// sale order persistence. The order and its line items are stored in separate
// tables and always loaded together, since the reconciler needs the complete
// aggregate.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleOrderDTO represents the database structure for persisting sale order
// aggregates.
type SaleOrderDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID       `gorm:"type:uuid;index"`
	Total    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status   int             `gorm:"index"`
	Items    []SaleItemDTO   `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for sale order entities.
func (SaleOrderDTO) TableName() string {
	return "sale_orders"
}

// SaleItemDTO represents one line of a sale order with its delivered and
// pending quantities.
type SaleItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Product      string
	OrderedQty   int
	DeliveredQty int
	PendingQty   int
}

// TableName specifies the database table name for sale item entities.
func (SaleItemDTO) TableName() string {
	return "sale_items"
}

func fromDomain(aggregate *salesorder.SaleOrder) SaleOrderDTO {
	items := make([]SaleItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, SaleItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      item.OrderID().Bytes(),
			Product:      item.Product(),
			OrderedQty:   item.OrderedQty(),
			DeliveredQty: item.DeliveredQty(),
			PendingQty:   item.PendingQty(),
		})
	}

	return SaleOrderDTO{
		ID:       aggregate.ID().Bytes(),
		ClientID: aggregate.ClientID().Bytes(),
		Total:    aggregate.Total(),
		Status:   int(aggregate.Status()),
		Items:    items,
	}
}

func toDomain(dto SaleOrderDTO) (*salesorder.SaleOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*salesorder.SaleItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := salesorder.RestoreSaleItem(
			itemID, id, itemDTO.Product,
			itemDTO.OrderedQty, itemDTO.DeliveredQty, itemDTO.PendingQty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return salesorder.RestoreSaleOrder(id, clientID, dto.Total, salesorder.Status(dto.Status), items)
}
