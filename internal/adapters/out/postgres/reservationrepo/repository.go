package reservationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/reservation"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reservation to the database.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *reservation.PickupReservation) error {
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

// Update saves an existing reservation's status and timestamp.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *reservation.PickupReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "updated_at": dto.UpdatedAt})
	if result.Error != nil {
		return pgerrors.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.PickupReservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup reservation", id.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's reservation in an active status.
func (r *GormReservationRepository) GetActiveByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*reservation.PickupReservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status IN ?", orderID.Bytes(), activeStatusInts()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active pickup reservation", orderID.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}

// GetNonCancelledByOrder retrieves the order's reservation in any status
// except cancelled.
func (r *GormReservationRepository) GetNonCancelledByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*reservation.PickupReservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status <> ?", orderID.Bytes(), int(reservation.Cancelled)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("non-cancelled pickup reservation", orderID.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}

// CountActiveBySlot counts the reservations holding a place in the slot.
func (r *GormReservationRepository) CountActiveBySlot(ctx context.Context, slotID kernel.UUID) (int, error) {
	if err := slotID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReservationDTO{}).
		Where("slot_id = ? AND status IN ?", slotID.Bytes(), activeStatusInts()).
		Count(&count).Error
	if err != nil {
		return 0, pgerrors.Translate(err)
	}

	return int(count), nil
}

// GetLatestNoShowByClient retrieves the client's most recent no-show reservation.
func (r *GormReservationRepository) GetLatestNoShowByClient(
	ctx context.Context, clientID kernel.UUID,
) (*reservation.PickupReservation, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ?", clientID.Bytes(), int(reservation.NoShow)).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("no-show reservation", clientID.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return toDomain(dto)
}

func activeStatusInts() []int {
	statuses := reservation.ActiveStatuses()
	ints := make([]int, 0, len(statuses))
	for _, s := range statuses {
		ints = append(ints, int(s))
	}
	return ints
}

// GormSlotRepository implements SlotRepository using GORM. Slots are immutable
// reference data, so no aggregate tracking is needed.
type GormSlotRepository struct {
	db *gorm.DB
}

// NewGormSlotRepository creates a new GORM slot repository.
func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

// Add saves a new pickup slot to the database.
func (r *GormSlotRepository) Add(ctx context.Context, slot *reservation.PickupSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := slotFromDomain(slot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Translate(err)
	}

	return nil
}

// Get retrieves a pickup slot by ID.
func (r *GormSlotRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.PickupSlot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup slot", id.String())
		}
		return nil, pgerrors.Translate(err)
	}

	return slotToDomain(dto)
}
