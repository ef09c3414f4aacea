package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetClientBalanceQueryIsNotConstructed = errors.New(
		"GetClientBalanceQuery must be created via NewGetClientBalanceQuery constructor",
	)
)

// GetClientBalanceQuery retrieves a client's cached balance next to the
// balance summed live from their ledger, exposing any drift without touching
// the cache.
type GetClientBalanceQuery struct {
	clientID kernel.UUID
	mode     ledger.Mode

	guard guard.ConstructorGuard
}

// NewGetClientBalanceQuery creates a query for one client's balance in the
// given book of record (ModeAll sums every book).
func NewGetClientBalanceQuery(clientID kernel.UUID, mode ledger.Mode) (GetClientBalanceQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientBalanceQuery{}, err
	}
	if err := mode.ValidateFilter(); err != nil {
		return GetClientBalanceQuery{}, err
	}

	return GetClientBalanceQuery{
		clientID: clientID,
		mode:     mode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetClientBalanceQueryIsNotConstructed)
}

// ClientID returns the identifier of the client to inspect.
func (q GetClientBalanceQuery) ClientID() kernel.UUID {
	return q.clientID
}

// Mode returns the ledger filter the live sum replays.
func (q GetClientBalanceQuery) Mode() ledger.Mode {
	return q.mode
}

// GetClientBalanceQueryResponse reports the cached and live balances.
type GetClientBalanceQueryResponse struct {
	ClientID      kernel.UUID
	CachedBalance decimal.Decimal
	LedgerBalance decimal.Decimal
	Difference    decimal.Decimal
	EntryCount    int
}
