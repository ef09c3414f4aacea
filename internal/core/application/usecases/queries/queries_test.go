package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderFulfillmentQuery(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderFulfillmentQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetOrderFulfillmentQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetOrderFulfillmentQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderFulfillmentQueryIsNotConstructed)
}

func TestNewGetSlotAvailabilityQuery(t *testing.T) {
	slotID := kernel.NewUUID()

	query, err := queries.NewGetSlotAvailabilityQuery(slotID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, slotID, query.SlotID())

	_, err = queries.NewGetSlotAvailabilityQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetSlotAvailabilityQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetSlotAvailabilityQueryIsNotConstructed)
}

func TestNewGetClientBalanceQuery(t *testing.T) {
	clientID := kernel.NewUUID()

	query, err := queries.NewGetClientBalanceQuery(clientID, ledger.ModeAll)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, clientID, query.ClientID())
	assert.Equal(t, ledger.ModeAll, query.Mode())

	_, err = queries.NewGetClientBalanceQuery(kernel.UUID{}, ledger.ModeOfficial)
	require.Error(t, err)

	_, err = queries.NewGetClientBalanceQuery(kernel.NewUUID(), ledger.Mode(42))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero queries.GetClientBalanceQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetClientBalanceQueryIsNotConstructed)
}
