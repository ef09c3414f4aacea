package cmd

import (
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// realClock provides wall-clock time to the command handlers.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// CompositionRoot wires adapters into the command and query handlers. Each
// Create method hands the handler the narrowest unit of work interface it
// depends on.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      realClock{},
	}
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReserveSlotCommandHandler() (commands.ReserveSlotCommandHandler, error) {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	penaltyWindow := time.Duration(c.config.PenaltyWindowDays) * 24 * time.Hour
	return commands.NewReserveSlotCommandHandler(f, c.clock, penaltyWindow, c.config.ReserveMaxAttempts)
}

func (c *CompositionRoot) CreateCancelReservationCommandHandler() commands.CancelReservationCommandHandler {
	var f commands.ReservationLifecycleUoWFactory = FuncReservationLifecycleUoWFactory(
		func() commands.ReservationLifecycleUoW {
			return c.uowFactory.Create()
		})
	return commands.NewCancelReservationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateMarkNoShowCommandHandler() commands.MarkNoShowCommandHandler {
	var f commands.ReservationLifecycleUoWFactory = FuncReservationLifecycleUoWFactory(
		func() commands.ReservationLifecycleUoW {
			return c.uowFactory.Create()
		})
	return commands.NewMarkNoShowCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderCancellationUoWFactory = FuncOrderCancellationUoWFactory(
		func() commands.OrderCancellationUoW {
			return c.uowFactory.Create()
		})
	return commands.NewCancelOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRebuildBalanceCommandHandler() commands.RebuildBalanceCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRebuildBalanceCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepExpirationsCommandHandler() commands.SweepExpirationsCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpirationsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetOrderFulfillmentQueryHandler() queries.GetOrderFulfillmentQueryHandler {
	return queries.NewGetOrderFulfillmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSlotAvailabilityQueryHandler() queries.GetSlotAvailabilityQueryHandler {
	return queries.NewGetSlotAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientBalanceQueryHandler() queries.GetClientBalanceQueryHandler {
	return queries.NewGetClientBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncReservationLifecycleUoWFactory func() commands.ReservationLifecycleUoW

func (f FuncReservationLifecycleUoWFactory) Create() commands.ReservationLifecycleUoW {
	return f()
}

type FuncOrderCancellationUoWFactory func() commands.OrderCancellationUoW

func (f FuncOrderCancellationUoWFactory) Create() commands.OrderCancellationUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}
