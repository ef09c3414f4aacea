package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelDeliveryCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		cmd, err := commands.NewCancelDeliveryCommand(deliveryID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, deliveryID, cmd.DeliveryID())
	})

	t.Run("rejects empty delivery id", func(t *testing.T) {
		_, err := commands.NewCancelDeliveryCommand(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelDeliveryCommandIsNotConstructed)
	})
}
