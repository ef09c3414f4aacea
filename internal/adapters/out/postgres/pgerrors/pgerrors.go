// Package pgerrors translates low-level postgres errors into domain error
// types shared by the repositories and the unit of work.
package pgerrors

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// serializationFailure is the SQLSTATE postgres uses when it aborts a
// serializable transaction that cannot be untangled from a concurrent one.
const serializationFailure = "40001"

// Translate maps a serialization failure to a SerializationFailureError so
// command handlers can recognize it and retry. Every other error, and nil,
// passes through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == serializationFailure {
		return errs.NewSerializationFailureError(err)
	}

	return err
}
