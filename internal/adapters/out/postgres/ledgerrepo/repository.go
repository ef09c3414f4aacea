package ledgerrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerEntryRepository implements LedgerEntryRepository using GORM.
type GormLedgerEntryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerEntryRepository creates a new GORM ledger entry repository.
func NewGormLedgerEntryRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the client's ledger.
func (r *GormLedgerEntryRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err)
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetAllByClient retrieves the client's entries ordered by recording time.
// ModeAll returns the full ledger.
func (r *GormLedgerEntryRepository) GetAllByClient(
	ctx context.Context, clientID kernel.UUID, mode ledger.Mode,
) ([]*ledger.Entry, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}
	if err := mode.ValidateFilter(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Where("client_id = ?", clientID.Bytes())
	if mode != ledger.ModeAll {
		tx = tx.Where("mode = ?", int(mode))
	}

	var dtos []EntryDTO
	if err := tx.Order("recorded_at, id").Find(&dtos).Error; err != nil {
		return nil, pgerrors.Translate(err)
	}

	entries := make([]*ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
