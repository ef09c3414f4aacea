package errs_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("capacity")

		assert.Equal(t, "capacity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: capacity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("capacity", cause)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: capacity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("clientId")

		assert.Equal(t, "clientId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: clientId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("clientId", cause)

		assert.Equal(t, "clientId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: clientId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("sale_order", "Cancelled", "Delivered")

		assert.Equal(t, "sale_order", err.DocType)
		assert.Equal(t, "Cancelled", err.From)
		assert.Equal(t, "Delivered", err.To)
		assert.Equal(t, "invalid transition: sale_order from Cancelled to Delivered", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("delivery", "Delivered", "Pending", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: delivery from Delivered to Pending (cause: terminal state)",
			err.Error())
	})
}

func TestUnknownDocTypeError(t *testing.T) {
	err := errs.NewUnknownDocTypeError("purchase_order")

	assert.Equal(t, "purchase_order", err.DocType)
	assert.Equal(t, "unknown document type: purchase_order", err.Error())
	assert.Equal(t, errs.ErrUnknownDocType, err.Unwrap())
}

func TestDuplicateReservationError(t *testing.T) {
	err := errs.NewDuplicateReservationError("order-1", "res-9")

	assert.Equal(t, "order-1", err.OrderID)
	assert.Equal(t, "res-9", err.ReservationID)
	assert.Equal(t, "duplicate reservation: order order-1 already holds active reservation res-9", err.Error())
	assert.Equal(t, errs.ErrDuplicateReservation, err.Unwrap())
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("slot-3", 5)

	assert.Equal(t, "slot-3", err.SlotID)
	assert.Equal(t, 5, err.Capacity)
	assert.Equal(t, "capacity exceeded: slot slot-3 is fully booked (capacity 5)", err.Error())
	assert.Equal(t, errs.ErrCapacityExceeded, err.Unwrap())
}

func TestPenaltyActiveError(t *testing.T) {
	until := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	err := errs.NewPenaltyActiveError("client-7", until)

	assert.Equal(t, "client-7", err.ClientID)
	assert.Equal(t, until, err.Until)
	assert.Equal(t, "penalty active: client client-7 cannot reserve until 2024-03-15T10:00:00Z", err.Error())
	assert.Equal(t, errs.ErrPenaltyActive, err.Unwrap())
}

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("SQLSTATE 40001")
		err := errs.NewConcurrencyConflictError(3, cause)

		assert.Equal(t, 3, err.Attempts)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "concurrency conflict: gave up after 3 attempts (cause: SQLSTATE 40001)", err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError(1, nil)
		assert.Equal(t, "concurrency conflict: gave up after 1 attempts", err.Error())
	})
}

func TestDataIntegrityError(t *testing.T) {
	t.Run("NewDataIntegrityError", func(t *testing.T) {
		err := errs.NewDataIntegrityError("delivered quantity exceeds ordered quantity")

		assert.Equal(t, "delivered quantity exceeds ordered quantity", err.Invariant)
		assert.Equal(t,
			"data integrity violation: delivered quantity exceeds ordered quantity",
			err.Error())
		assert.Equal(t, errs.ErrDataIntegrity, err.Unwrap())
	})

	t.Run("NewDataIntegrityErrorWithCause", func(t *testing.T) {
		cause := errors.New("item 42")
		err := errs.NewDataIntegrityErrorWithCause("negative pending quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "data integrity violation: negative pending quantity (cause: item 42)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("capacity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("clientId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("quote", "Lost", "Expired"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewUnknownDocTypeError("x"), errs.ErrUnknownDocType)
		require.ErrorIs(t, errs.NewDuplicateReservationError("o", "r"), errs.ErrDuplicateReservation)
		require.ErrorIs(t, errs.NewCapacityExceededError("s", 1), errs.ErrCapacityExceeded)
		require.ErrorIs(t, errs.NewPenaltyActiveError("c", time.Now()), errs.ErrPenaltyActive)
		require.ErrorIs(t, errs.NewConcurrencyConflictError(3, nil), errs.ErrConcurrencyConflict)
		require.ErrorIs(t, errs.NewDataIntegrityError("x"), errs.ErrDataIntegrity)
	})
}
