package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrSweepExpirationsCommandIsNotConstructed = errors.New(
		"SweepExpirationsCommand must be created via NewSweepExpirationsCommand constructor",
	)
)

// SweepExpirationsCommand represents a request to apply the expiration policy
// to every quote past its validity date. It carries no parameters; the sweep
// time comes from the handler's clock.
type SweepExpirationsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpirationsCommand creates a command to sweep expired quotes.
func NewSweepExpirationsCommand() SweepExpirationsCommand {
	return SweepExpirationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepExpirationsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpirationsCommandIsNotConstructed)
}
