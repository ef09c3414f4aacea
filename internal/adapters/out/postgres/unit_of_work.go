// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction, hands out
// repositories bound to it, and tracks the aggregates modified inside it.
//
// Two transaction flavors exist: Begin starts at the connection's default
// isolation level, BeginSerializable at serializable isolation for the
// reservation flow, where concurrent capacity checks against the same slot
// must not both pass. Serializable transactions can be aborted by the store
// at any statement; Commit translates those aborts so the caller's retry loop
// can recognize them.
package postgres

import (
	"context"
	"database/sql"

	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/adapters/out/postgres/quoterepo"
	"fulfillment/internal/adapters/out/postgres/reservationrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the repositories
// bound to it. Multiple calls to Begin or BeginSerializable on the same
// instance are safe and will not create nested transactions.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction at the default isolation level.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// BeginSerializable initiates a new database transaction at serializable
// isolation. The reservation commands use it; the store may abort the
// transaction at commit time (or earlier) with a serialization failure.
func (uow *GormUnitOfWork) BeginSerializable(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. A
// serialization abort surfaces as a SerializationFailureError so retry loops
// can recognize it. After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerrors.Translate(err)
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SaleOrderRepository returns a sale order repository bound to the current transaction.
func (uow *GormUnitOfWork) SaleOrderRepository() ports.SaleOrderRepository {
	return orderrepo.NewGormSaleOrderRepository(uow.conn(), uow)
}

// DeliveryRepository returns a delivery repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// ReservationRepository returns a reservation repository bound to the current transaction.
func (uow *GormUnitOfWork) ReservationRepository() ports.ReservationRepository {
	return reservationrepo.NewGormReservationRepository(uow.conn(), uow)
}

// SlotRepository returns a slot repository bound to the current transaction.
func (uow *GormUnitOfWork) SlotRepository() ports.SlotRepository {
	return reservationrepo.NewGormSlotRepository(uow.conn())
}

// QuoteRepository returns a quote repository bound to the current transaction.
func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn(), uow)
}

// LedgerEntryRepository returns a ledger entry repository bound to the current transaction.
func (uow *GormUnitOfWork) LedgerEntryRepository() ports.LedgerEntryRepository {
	return ledgerrepo.NewGormLedgerEntryRepository(uow.conn(), uow)
}

// ClientRepository returns a client repository bound to the current transaction.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
