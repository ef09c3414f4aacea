// Package clientrepo provides data transfer objects and mapping functions for
// client persistence.
package clientrepo

import (
	"fulfillment/internal/core/domain/model/client"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string
	CachedBalance decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		CachedBalance: aggregate.CachedBalance(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.CachedBalance)
}
