package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionValidator_Validate(t *testing.T) {
	validator := services.NewTransitionValidator()

	t.Run("allows legal transitions", func(t *testing.T) {
		tests := []struct {
			docType string
			from    string
			to      string
		}{
			{"sale_order", "draft", "confirmed"},
			{"sale_order", "confirmed", "partially_delivered"},
			{"sale_order", "partially_delivered", "partially_delivered"},
			{"sale_order", "partially_delivered", "delivered"},
			{"delivery", "pending", "in_transit"},
			{"delivery", "picked_up", "delivered"},
			{"quote", "sent", "negotiating"},
			{"quote", "accepted", "converted"},
			{"pickup_reservation", "reserved", "waiting"},
			{"pickup_reservation", "loading", "completed"},
		}

		for _, tt := range tests {
			assert.NoError(t, validator.Validate(tt.docType, tt.from, tt.to),
				"%s: %s -> %s", tt.docType, tt.from, tt.to)
		}
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		tests := []struct {
			docType string
			from    string
			to      string
		}{
			{"sale_order", "draft", "delivered"},
			{"sale_order", "cancelled", "confirmed"},
			{"sale_order", "delivered", "partially_delivered"},
			{"delivery", "pending", "delivered"},
			{"delivery", "delivered", "cancelled"},
			{"quote", "draft", "accepted"},
			{"quote", "expired", "sent"},
			{"pickup_reservation", "reserved", "completed"},
			{"pickup_reservation", "no_show", "reserved"},
		}

		for _, tt := range tests {
			err := validator.Validate(tt.docType, tt.from, tt.to)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition,
				"%s: %s -> %s", tt.docType, tt.from, tt.to)
		}
	})

	t.Run("rejects transition to the same state without an explicit self-edge", func(t *testing.T) {
		require.ErrorIs(t, validator.Validate("sale_order", "confirmed", "confirmed"),
			errs.ErrInvalidTransition)
		require.ErrorIs(t, validator.Validate("delivery", "pending", "pending"),
			errs.ErrInvalidTransition)
	})

	t.Run("fails closed on unknown document type", func(t *testing.T) {
		err := validator.Validate("purchase_order", "draft", "confirmed")
		require.ErrorIs(t, err, errs.ErrUnknownDocType)
		assert.ErrorContains(t, err, "purchase_order")
	})

	t.Run("fails closed on unknown state names", func(t *testing.T) {
		require.ErrorIs(t, validator.Validate("sale_order", "bogus", "confirmed"),
			errs.ErrInvalidTransition)
		require.ErrorIs(t, validator.Validate("sale_order", "draft", "bogus"),
			errs.ErrInvalidTransition)
		require.ErrorIs(t, validator.Validate("quote", "", "sent"),
			errs.ErrInvalidTransition)
	})
}
