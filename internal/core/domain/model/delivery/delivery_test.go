package delivery_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	deliveryID := kernel.NewUUID()
	item, err := delivery.NewDeliveryItem(kernel.NewUUID(), deliveryID, kernel.NewUUID(), 5)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(deliveryID, kernel.NewUUID(), []*delivery.DeliveryItem{item})
	require.NoError(t, err)
	return d
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    delivery.Status
		to      delivery.Status
		allowed bool
	}{
		{"pending to in transit", delivery.Pending, delivery.InTransit, true},
		{"pending to picked up", delivery.Pending, delivery.PickedUp, true},
		{"pending to cancelled", delivery.Pending, delivery.Cancelled, true},
		{"pending to delivered is not implicit", delivery.Pending, delivery.Delivered, false},
		{"in transit to delivered", delivery.InTransit, delivery.Delivered, true},
		{"picked up to delivered", delivery.PickedUp, delivery.Delivered, true},
		{"in transit to cancelled", delivery.InTransit, delivery.Cancelled, false},
		{"delivered is terminal", delivery.Delivered, delivery.Pending, false},
		{"cancelled is terminal", delivery.Cancelled, delivery.Pending, false},
		{"no-op transition rejected", delivery.Pending, delivery.Pending, false},
		{"unknown fails closed", delivery.Unknown, delivery.Pending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.Pending, d.Status())
		assert.False(t, d.IsCancelled())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDelivery_Lifecycle(t *testing.T) {
	t.Run("dispatch then deliver", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Dispatch())
		assert.Equal(t, delivery.InTransit, d.Status())

		require.NoError(t, d.MarkDelivered())
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("pick up then deliver", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.MarkPickedUp())
		require.NoError(t, d.MarkDelivered())
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("cannot deliver a pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.ErrorIs(t, d.MarkDelivered(), errs.ErrInvalidTransition)
	})

	t.Run("cancel pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel())
		assert.True(t, d.IsCancelled())
	})

	t.Run("cannot cancel once in transit", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Dispatch())

		require.ErrorIs(t, d.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestNewDeliveryItem(t *testing.T) {
	t.Run("zero quantity is legal", func(t *testing.T) {
		item, err := delivery.NewDeliveryItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.DeliveredQty())
	})

	t.Run("negative quantity is invalid", func(t *testing.T) {
		_, err := delivery.NewDeliveryItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	status, err := delivery.StatusFromString("InTransit")
	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, status)

	_, err = delivery.StatusFromString("Teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
