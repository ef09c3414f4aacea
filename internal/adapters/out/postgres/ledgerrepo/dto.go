// Package ledgerrepo provides data transfer objects and mapping functions for
// the append-only ledger. Entries are only ever inserted; the table carries no
// update path.
package ledgerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting ledger entries.
type EntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID       `gorm:"type:uuid;index"`
	EntryType  int
	Mode       int             `gorm:"index"`
	Debit      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Credit     decimal.Decimal `gorm:"type:numeric(14,2)"`
	RecordedAt time.Time       `gorm:"index"`
}

// TableName specifies the database table name for ledger entry entities.
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ClientID:   entry.ClientID().Bytes(),
		EntryType:  int(entry.EntryType()),
		Mode:       int(entry.Mode()),
		Debit:      entry.Debit(),
		Credit:     entry.Credit(),
		RecordedAt: entry.RecordedAt(),
	}
}

func toDomain(dto EntryDTO) (*ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(
		id, clientID,
		ledger.EntryType(dto.EntryType), ledger.Mode(dto.Mode),
		dto.Debit, dto.Credit, dto.RecordedAt)
}
