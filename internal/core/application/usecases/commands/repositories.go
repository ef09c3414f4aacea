// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the repositories
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SerializableTxManager handles transactions at serializable isolation.
	// Commit may fail with a concurrency conflict; the handler owns the retry.
	SerializableTxManager interface {
		BeginSerializable(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SaleOrderRepoFactory provides access to the sale order repository within a transaction.
	SaleOrderRepoFactory interface {
		SaleOrderRepository() ports.SaleOrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// SlotRepoFactory provides access to the slot repository within a transaction.
	SlotRepoFactory interface {
		SlotRepository() ports.SlotRepository
	}

	// QuoteRepoFactory provides access to the quote repository within a transaction.
	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	// LedgerRepoFactory provides access to the ledger entry repository within a transaction.
	LedgerRepoFactory interface {
		LedgerEntryRepository() ports.LedgerEntryRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// FulfillmentUoW manages transactions for the delivery confirmation and
	// cancellation flows, which update a delivery and reconcile its order in
	// one transaction.
	FulfillmentUoW interface {
		TxManager
		SaleOrderRepoFactory
		DeliveryRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ReservationUoW manages the serializable transaction of the slot
	// reservation flow: duplicate, penalty and capacity checks plus the insert
	// all read and write under the same isolation guarantee.
	ReservationUoW interface {
		SerializableTxManager
		SaleOrderRepoFactory
		ReservationRepoFactory
		SlotRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	// Each retry attempt gets a fresh unit of work.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// ReservationLifecycleUoW manages transactions for reservation-only status
	// changes (cancel, no-show), which need no serializable isolation.
	ReservationLifecycleUoW interface {
		TxManager
		ReservationRepoFactory
	}

	// ReservationLifecycleUoWFactory creates new reservation lifecycle unit of
	// work instances.
	ReservationLifecycleUoWFactory interface {
		Create() ReservationLifecycleUoW
	}

	// OrderCancellationUoW manages transactions for order cancellation, which
	// cascades to the order's active reservation.
	OrderCancellationUoW interface {
		TxManager
		SaleOrderRepoFactory
		ReservationRepoFactory
	}

	// OrderCancellationUoWFactory creates new order cancellation unit of work instances.
	OrderCancellationUoWFactory interface {
		Create() OrderCancellationUoW
	}

	// LedgerUoW manages transactions for the balance rebuild flow.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
		ClientRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// QuoteUoW manages transactions for the quote expiration sweep.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}
)
