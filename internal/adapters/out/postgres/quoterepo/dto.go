// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence.
package quoterepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
type QuoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID `gorm:"type:uuid;index"`
	Status     int       `gorm:"index"`
	ValidUntil time.Time `gorm:"index"`
	IsExpired  bool
}

// TableName specifies the database table name for quote entities.
func (QuoteDTO) TableName() string {
	return "quotes"
}

func fromDomain(aggregate *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:         aggregate.ID().Bytes(),
		ClientID:   aggregate.ClientID().Bytes(),
		Status:     int(aggregate.Status()),
		ValidUntil: aggregate.ValidUntil(),
		IsExpired:  aggregate.IsExpired(),
	}
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(id, clientID, quote.Status(dto.Status), dto.ValidUntil, dto.IsExpired)
}
