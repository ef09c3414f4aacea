package salesorder_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, orderID kernel.UUID, qty int) *salesorder.SaleItem {
	t.Helper()
	item, err := salesorder.NewSaleItem(kernel.NewUUID(), orderID, "widget", qty)
	require.NoError(t, err)
	return item
}

func TestNewSaleOrder(t *testing.T) {
	t.Run("creates draft order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}

		order, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(100), items)

		require.NoError(t, err)
		assert.Equal(t, salesorder.Draft, order.Status())
		assert.Len(t, order.Items(), 1)
		require.NoError(t, order.Validate())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := salesorder.NewSaleOrder(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(100), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}

		_, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(-1), items)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}

		_, err := salesorder.NewSaleOrder(kernel.UUID{}, kernel.NewUUID(), decimal.NewFromInt(1), items)

		require.Error(t, err)
	})
}

func TestSaleOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var order salesorder.SaleOrder
		require.ErrorIs(t, order.Validate(), salesorder.ErrSaleOrderIsNotConstructed)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var order *salesorder.SaleOrder
		require.ErrorIs(t, order.Validate(), salesorder.ErrSaleOrderIsNotConstructed)
	})
}

func TestSaleOrder_Lifecycle(t *testing.T) {
	newOrder := func(t *testing.T) *salesorder.SaleOrder {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}
		order, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(50), items)
		require.NoError(t, err)
		return order
	}

	t.Run("confirm draft order", func(t *testing.T) {
		order := newOrder(t)

		require.NoError(t, order.Confirm())
		assert.Equal(t, salesorder.Confirmed, order.Status())
	})

	t.Run("cancel confirmed order", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.Confirm())

		require.NoError(t, order.Cancel())
		assert.Equal(t, salesorder.Cancelled, order.Status())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.Confirm())

		require.ErrorIs(t, order.Confirm(), errs.ErrInvalidTransition)
	})

	t.Run("cannot cancel a cancelled order", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.Cancel())

		require.ErrorIs(t, order.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestSaleOrder_ApplyFulfillmentStatus(t *testing.T) {
	confirmedOrder := func(t *testing.T) *salesorder.SaleOrder {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}
		order, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(50), items)
		require.NoError(t, err)
		require.NoError(t, order.Confirm())
		return order
	}

	t.Run("confirmed to partially delivered", func(t *testing.T) {
		order := confirmedOrder(t)

		require.NoError(t, order.ApplyFulfillmentStatus(salesorder.PartiallyDelivered))
		assert.Equal(t, salesorder.PartiallyDelivered, order.Status())
	})

	t.Run("repeated partial deliveries stay partially delivered", func(t *testing.T) {
		order := confirmedOrder(t)
		require.NoError(t, order.ApplyFulfillmentStatus(salesorder.PartiallyDelivered))

		require.NoError(t, order.ApplyFulfillmentStatus(salesorder.PartiallyDelivered))
		assert.Equal(t, salesorder.PartiallyDelivered, order.Status())
	})

	t.Run("partially delivered to delivered", func(t *testing.T) {
		order := confirmedOrder(t)
		require.NoError(t, order.ApplyFulfillmentStatus(salesorder.PartiallyDelivered))

		require.NoError(t, order.ApplyFulfillmentStatus(salesorder.Delivered))
		assert.Equal(t, salesorder.Delivered, order.Status())
	})

	t.Run("cancelled order rejects fulfillment status", func(t *testing.T) {
		orderID := kernel.NewUUID()
		items := []*salesorder.SaleItem{newTestItem(t, orderID, 10)}
		order, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(50), items)
		require.NoError(t, err)
		require.NoError(t, order.Cancel())

		err = order.ApplyFulfillmentStatus(salesorder.Delivered)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("only fulfillment statuses are accepted", func(t *testing.T) {
		order := confirmedOrder(t)

		err := order.ApplyFulfillmentStatus(salesorder.Cancelled)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestSaleOrder_Item(t *testing.T) {
	orderID := kernel.NewUUID()
	item1 := newTestItem(t, orderID, 10)
	item2 := newTestItem(t, orderID, 5)
	order, err := salesorder.NewSaleOrder(orderID, kernel.NewUUID(), decimal.NewFromInt(75),
		[]*salesorder.SaleItem{item1, item2})
	require.NoError(t, err)

	assert.Same(t, item2, order.Item(item2.ID()))
	assert.Nil(t, order.Item(kernel.NewUUID()))
}

func TestSaleItem_ApplyDelivered(t *testing.T) {
	newItem := func(t *testing.T, qty int) *salesorder.SaleItem {
		return newTestItem(t, kernel.NewUUID(), qty)
	}

	t.Run("partial delivery conserves quantities", func(t *testing.T) {
		item := newItem(t, 10)

		require.NoError(t, item.ApplyDelivered(6))

		assert.Equal(t, 6, item.DeliveredQty())
		assert.Equal(t, 4, item.PendingQty())
		assert.Equal(t, item.OrderedQty(), item.DeliveredQty()+item.PendingQty())
		assert.False(t, item.IsFullyDelivered())
	})

	t.Run("full delivery", func(t *testing.T) {
		item := newItem(t, 10)

		require.NoError(t, item.ApplyDelivered(10))

		assert.Equal(t, 0, item.PendingQty())
		assert.True(t, item.IsFullyDelivered())
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		item := newItem(t, 10)
		require.NoError(t, item.ApplyDelivered(6))

		require.NoError(t, item.ApplyDelivered(6))

		assert.Equal(t, 6, item.DeliveredQty())
		assert.Equal(t, 4, item.PendingQty())
	})

	t.Run("over-delivery is a data integrity violation", func(t *testing.T) {
		item := newItem(t, 10)

		err := item.ApplyDelivered(11)

		require.ErrorIs(t, err, errs.ErrDataIntegrity)
		// The item must be left untouched.
		assert.Equal(t, 0, item.DeliveredQty())
		assert.Equal(t, 10, item.PendingQty())
	})

	t.Run("negative sum is invalid input", func(t *testing.T) {
		item := newItem(t, 10)

		require.ErrorIs(t, item.ApplyDelivered(-1), errs.ErrValueIsInvalid)
	})
}

func TestRestoreSaleItem(t *testing.T) {
	t.Run("restores persisted quantities", func(t *testing.T) {
		item, err := salesorder.RestoreSaleItem(kernel.NewUUID(), kernel.NewUUID(), "widget", 10, 6, 4)

		require.NoError(t, err)
		assert.Equal(t, 6, item.DeliveredQty())
		assert.Equal(t, 4, item.PendingQty())
	})

	t.Run("rejects quantities that violate conservation", func(t *testing.T) {
		_, err := salesorder.RestoreSaleItem(kernel.NewUUID(), kernel.NewUUID(), "widget", 10, 6, 5)

		require.ErrorIs(t, err, errs.ErrDataIntegrity)
	})
}
