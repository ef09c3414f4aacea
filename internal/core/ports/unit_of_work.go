package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction at the default isolation level.
	Begin(ctx context.Context) error

	// BeginSerializable starts a new database transaction at serializable
	// isolation. Reservation commands use it so that concurrent capacity
	// checks against the same slot cannot both pass; callers must be prepared
	// for a serialization failure at commit time.
	BeginSerializable(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SaleOrderRepository returns a SaleOrderRepository bound to the current transaction.
	SaleOrderRepository() SaleOrderRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// ReservationRepository returns a ReservationRepository bound to the current transaction.
	ReservationRepository() ReservationRepository

	// SlotRepository returns a SlotRepository bound to the current transaction.
	SlotRepository() SlotRepository

	// QuoteRepository returns a QuoteRepository bound to the current transaction.
	QuoteRepository() QuoteRepository

	// LedgerEntryRepository returns a LedgerEntryRepository bound to the current transaction.
	LedgerEntryRepository() LedgerEntryRepository

	// ClientRepository returns a ClientRepository bound to the current transaction.
	ClientRepository() ClientRepository
}
