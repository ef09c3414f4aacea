package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetClientBalanceQueryHandler reads a client's cached balance and sums their
// ledger in one round trip.
type GetClientBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetClientBalanceQueryHandler creates a handler for client balance queries.
func NewGetClientBalanceQueryHandler(db *gorm.DB) GetClientBalanceQueryHandler {
	return GetClientBalanceQueryHandler{db: db}
}

// Handle returns the cached balance, the live ledger sum and their
// difference. Returns ErrObjectNotFound when the client does not exist.
func (h GetClientBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetClientBalanceQuery,
) (GetClientBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientBalanceQueryResponse{}, err
	}

	var cached, live decimal.Decimal
	var entryCount int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.cached_balance,
			COALESCE(SUM(e.debit - e.credit), 0),
			COUNT(e.id)
		FROM clients c
		LEFT JOIN ledger_entries e
			ON e.client_id = c.id AND (? = ? OR e.mode = ?)
		WHERE c.id = ?
		GROUP BY c.cached_balance
	`, int(query.Mode()), int(ledger.ModeAll), int(query.Mode()),
		query.ClientID().Bytes()).Row()

	if err := row.Scan(&cached, &live, &entryCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetClientBalanceQueryResponse{},
				errs.NewObjectNotFoundError("client", query.ClientID().String())
		}
		return GetClientBalanceQueryResponse{}, err
	}

	return GetClientBalanceQueryResponse{
		ClientID:      query.ClientID(),
		CachedBalance: cached,
		LedgerBalance: live,
		Difference:    live.Sub(cached),
		EntryCount:    entryCount,
	}, nil
}
