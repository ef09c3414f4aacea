package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors to HTTP status codes. Validation failures are
// client errors, rejected business rules are conflicts, a broken stored
// invariant is a server error.
func writeError(ctx echo.Context, err error) error {
	var (
		notFound          *errs.ObjectNotFoundError
		invalidTransition *errs.InvalidTransitionError
		unknownDocType    *errs.UnknownDocTypeError
		duplicate         *errs.DuplicateReservationError
		capacity          *errs.CapacityExceededError
		penalty           *errs.PenaltyActiveError
		conflict          *errs.ConcurrencyConflictError
		integrity         *errs.DataIntegrityError
	)

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &invalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.As(err, &unknownDocType):
		code = http.StatusBadRequest
	case errors.As(err, &duplicate), errors.As(err, &capacity), errors.As(err, &penalty):
		code = http.StatusConflict
	case errors.As(err, &conflict):
		code = http.StatusConflict
	case errors.As(err, &integrity):
		code = http.StatusInternalServerError
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
