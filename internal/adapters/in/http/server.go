// Package http exposes the engine's operations over a JSON API. Handlers
// translate requests into commands and queries and map domain errors to
// status codes; no business logic lives here.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	transitionValidator services.TransitionValidator

	// Command handlers
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler
	cancelDeliveryHandler    commands.CancelDeliveryCommandHandler
	reserveSlotHandler       commands.ReserveSlotCommandHandler
	cancelReservationHandler commands.CancelReservationCommandHandler
	markNoShowHandler        commands.MarkNoShowCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	rebuildBalanceHandler    commands.RebuildBalanceCommandHandler
	sweepExpirationsHandler  commands.SweepExpirationsCommandHandler

	// Query handlers
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler
	getSlotAvailabilityHandler queries.GetSlotAvailabilityQueryHandler
	getClientBalanceHandler    queries.GetClientBalanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	reserveSlotHandler commands.ReserveSlotCommandHandler,
	cancelReservationHandler commands.CancelReservationCommandHandler,
	markNoShowHandler commands.MarkNoShowCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	rebuildBalanceHandler commands.RebuildBalanceCommandHandler,
	sweepExpirationsHandler commands.SweepExpirationsCommandHandler,
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler,
	getSlotAvailabilityHandler queries.GetSlotAvailabilityQueryHandler,
	getClientBalanceHandler queries.GetClientBalanceQueryHandler,
) *Server {
	return &Server{
		transitionValidator:        services.NewTransitionValidator(),
		confirmDeliveryHandler:     confirmDeliveryHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		reserveSlotHandler:         reserveSlotHandler,
		cancelReservationHandler:   cancelReservationHandler,
		markNoShowHandler:          markNoShowHandler,
		cancelOrderHandler:         cancelOrderHandler,
		rebuildBalanceHandler:      rebuildBalanceHandler,
		sweepExpirationsHandler:    sweepExpirationsHandler,
		getOrderFulfillmentHandler: getOrderFulfillmentHandler,
		getSlotAvailabilityHandler: getSlotAvailabilityHandler,
		getClientBalanceHandler:    getClientBalanceHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/transitions/validate", s.ValidateTransition)

	api.POST("/deliveries/:id/confirm", s.ConfirmDelivery)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)

	api.GET("/orders/:id/fulfillment", s.GetOrderFulfillment)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/reservations", s.ReserveSlot)
	api.POST("/reservations/:id/cancel", s.CancelReservation)
	api.POST("/reservations/:id/no-show", s.MarkNoShow)
	api.GET("/slots/:id/availability", s.GetSlotAvailability)

	api.GET("/clients/:id/balance", s.GetClientBalance)
	api.POST("/clients/:id/balance/rebuild", s.RebuildBalance)

	api.POST("/quotes/sweep-expirations", s.SweepExpirations)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TransitionRequest asks whether a document may move between two states.
type TransitionRequest struct {
	DocType string `json:"doc_type"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// TransitionResponse reports the verdict for an allowed transition.
type TransitionResponse struct {
	Allowed bool `json:"allowed"`
}

// ValidateTransition handles POST /api/v1/transitions/validate - checks a
// status transition against the document type's transition table.
func (s *Server) ValidateTransition(ctx echo.Context) error {
	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.transitionValidator.Validate(req.DocType, req.From, req.To); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{Allowed: true})
}

// ConfirmDelivery handles POST /api/v1/deliveries/:id/confirm - marks the
// delivery delivered and reconciles its order.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - cancels the
// delivery and reconciles its order.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderFulfillmentItem is one order line in the fulfillment response.
type OrderFulfillmentItem struct {
	SaleItemID   string `json:"sale_item_id"`
	Product      string `json:"product"`
	OrderedQty   int    `json:"ordered_qty"`
	DeliveredQty int    `json:"delivered_qty"`
	PendingQty   int    `json:"pending_qty"`
}

// OrderFulfillmentResponse is the order's fulfillment snapshot.
type OrderFulfillmentResponse struct {
	OrderID string                 `json:"order_id"`
	Status  string                 `json:"status"`
	Items   []OrderFulfillmentItem `json:"items"`
}

// GetOrderFulfillment handles GET /api/v1/orders/:id/fulfillment.
func (s *Server) GetOrderFulfillment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderFulfillmentQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderFulfillmentItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderFulfillmentItem{
			SaleItemID:   item.SaleItemID.String(),
			Product:      item.Product,
			OrderedQty:   item.OrderedQty,
			DeliveredQty: item.DeliveredQty,
			PendingQty:   item.PendingQty,
		}
	}

	return ctx.JSON(http.StatusOK, OrderFulfillmentResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status,
		Items:   items,
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels the order and
// its active reservation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReserveSlotRequest asks for a place in a pickup slot for a sale order.
type ReserveSlotRequest struct {
	OrderID string `json:"order_id"`
	SlotID  string `json:"slot_id"`
}

// ReserveSlotResponse returns the identifier of the granted reservation.
type ReserveSlotResponse struct {
	ReservationID string `json:"reservation_id"`
}

// ReserveSlot handles POST /api/v1/reservations - reserves a slot place for
// an order.
func (s *Server) ReserveSlot(ctx echo.Context) error {
	var req ReserveSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	slotID, err := kernel.UUIDFromString(req.SlotID)
	if err != nil {
		return writeError(ctx, err)
	}

	reservationID := kernel.NewUUID()
	cmd, err := commands.NewReserveSlotCommand(reservationID, orderID, slotID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reserveSlotHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ReserveSlotResponse{
		ReservationID: reservationID.String(),
	})
}

// CancelReservation handles POST /api/v1/reservations/:id/cancel.
func (s *Server) CancelReservation(ctx echo.Context) error {
	reservationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelReservationCommand(reservationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkNoShow handles POST /api/v1/reservations/:id/no-show - records a missed
// pickup and starts the client's penalty window.
func (s *Server) MarkNoShow(ctx echo.Context) error {
	reservationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkNoShowCommand(reservationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markNoShowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SlotAvailabilityResponse reports a slot's remaining capacity.
type SlotAvailabilityResponse struct {
	SlotID      string `json:"slot_id"`
	Capacity    int    `json:"capacity"`
	ActiveCount int    `json:"active_count"`
	Remaining   int    `json:"remaining"`
}

// GetSlotAvailability handles GET /api/v1/slots/:id/availability.
func (s *Server) GetSlotAvailability(ctx echo.Context) error {
	slotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSlotAvailabilityQuery(slotID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getSlotAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SlotAvailabilityResponse{
		SlotID:      result.SlotID.String(),
		Capacity:    result.Capacity,
		ActiveCount: result.ActiveCount,
		Remaining:   result.Remaining,
	})
}

// ClientBalanceResponse compares a client's cached balance with the value
// replayed from the ledger.
type ClientBalanceResponse struct {
	ClientID      string `json:"client_id"`
	CachedBalance string `json:"cached_balance"`
	LedgerBalance string `json:"ledger_balance"`
	Difference    string `json:"difference"`
	EntryCount    int    `json:"entry_count"`
}

// GetClientBalance handles GET /api/v1/clients/:id/balance.
func (s *Server) GetClientBalance(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	mode, err := parseMode(ctx.QueryParam("mode"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetClientBalanceQuery(clientID, mode)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getClientBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClientBalanceResponse{
		ClientID:      result.ClientID.String(),
		CachedBalance: result.CachedBalance.String(),
		LedgerBalance: result.LedgerBalance.String(),
		Difference:    result.Difference.String(),
		EntryCount:    result.EntryCount,
	})
}

// RebuildBalanceResponse reports the outcome of one balance rebuild.
type RebuildBalanceResponse struct {
	Previous         string `json:"previous"`
	Rebuilt          string `json:"rebuilt"`
	Difference       string `json:"difference"`
	EntriesProcessed int    `json:"entries_processed"`
	Drift            bool   `json:"drift"`
}

// RebuildBalance handles POST /api/v1/clients/:id/balance/rebuild - replays
// the client's ledger and corrects the cached balance. With dry_run=true the
// drift is reported but nothing is written.
func (s *Server) RebuildBalance(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	mode, err := parseMode(ctx.QueryParam("mode"))
	if err != nil {
		return writeError(ctx, err)
	}

	dryRun := ctx.QueryParam("dry_run") == "true"

	cmd, err := commands.NewRebuildBalanceCommand(clientID, mode, dryRun)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.rebuildBalanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RebuildBalanceResponse{
		Previous:         result.Previous.String(),
		Rebuilt:          result.Rebuilt.String(),
		Difference:       result.Difference.String(),
		EntriesProcessed: result.EntriesProcessed,
		Drift:            result.HasDrift(),
	})
}

// SweepExpirationsResponse reports how many quotes the sweep changed.
type SweepExpirationsResponse struct {
	Swept int `json:"swept"`
}

// SweepExpirations handles POST /api/v1/quotes/sweep-expirations - applies the
// expiration policy to every quote past its validity date.
func (s *Server) SweepExpirations(ctx echo.Context) error {
	cmd := commands.NewSweepExpirationsCommand()

	swept, err := s.sweepExpirationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SweepExpirationsResponse{Swept: swept})
}

// parseMode maps the mode query parameter to a ledger mode. An empty value
// selects all books.
func parseMode(raw string) (ledger.Mode, error) {
	switch raw {
	case "", "all":
		return ledger.ModeAll, nil
	case "official":
		return ledger.ModeOfficial, nil
	case "management":
		return ledger.ModeManagement, nil
	default:
		return ledger.ModeAll, errs.NewValueIsInvalidError("mode")
	}
}
