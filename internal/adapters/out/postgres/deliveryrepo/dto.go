// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	dlv "fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates.
type DeliveryDTO struct {
	ID      uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID         `gorm:"type:uuid;index"`
	Status  int               `gorm:"index"`
	Items   []DeliveryItemDTO `gorm:"foreignKey:DeliveryID"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// DeliveryItemDTO records the quantity one delivery contributes to one sale item.
type DeliveryItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID   uuid.UUID `gorm:"type:uuid;index"`
	SaleItemID   uuid.UUID `gorm:"type:uuid;index"`
	DeliveredQty int
}

// TableName specifies the database table name for delivery item entities.
func (DeliveryItemDTO) TableName() string {
	return "delivery_items"
}

func fromDomain(aggregate *dlv.Delivery) DeliveryDTO {
	items := make([]DeliveryItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, DeliveryItemDTO{
			ID:           item.ID().Bytes(),
			DeliveryID:   item.DeliveryID().Bytes(),
			SaleItemID:   item.SaleItemID().Bytes(),
			DeliveredQty: item.DeliveredQty(),
		})
	}

	return DeliveryDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID().Bytes(),
		Status:  int(aggregate.Status()),
		Items:   items,
	}
}

func toDomain(dto DeliveryDTO) (*dlv.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*dlv.DeliveryItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		saleItemID, itemErr := kernel.UUIDFromBytes(itemDTO.SaleItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := dlv.NewDeliveryItem(itemID, id, saleItemID, itemDTO.DeliveredQty)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return dlv.RestoreDelivery(id, orderID, dlv.Status(dto.Status), items)
}
