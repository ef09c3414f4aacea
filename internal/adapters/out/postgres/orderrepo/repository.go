package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSaleOrderRepository implements SaleOrderRepository using GORM.
type GormSaleOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSaleOrderRepository creates a new GORM sale order repository.
func NewGormSaleOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sale order with its items to the database.
func (r *GormSaleOrderRepository) Add(ctx context.Context, aggregate *salesorder.SaleOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing sale order and its items' quantities.
func (r *GormSaleOrderRepository) Update(ctx context.Context, aggregate *salesorder.SaleOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SaleOrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "total": dto.Total})
	if result.Error != nil {
		return pgerrors.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).Model(&SaleItemDTO{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"delivered_qty": item.DeliveredQty,
				"pending_qty":   item.PendingQty,
			}).Error
		if err != nil {
			return pgerrors.Translate(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sale order by ID with all its items.
func (r *GormSaleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*salesorder.SaleOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SaleOrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale order", id.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}
