package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRebuildBalanceCommandIsNotConstructed = errors.New(
		"RebuildBalanceCommand must be created via NewRebuildBalanceCommand constructor",
	)
)

// RebuildBalanceCommand represents a request to recompute a client's cached
// balance from their ledger. In dry-run mode the drift is reported but the
// cached value is left untouched; the nightly audit job runs it that way.
type RebuildBalanceCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	mode     ledger.Mode
	dryRun   bool

	guard guard.ConstructorGuard
}

// NewRebuildBalanceCommand creates a command to rebuild a client's balance
// from the entries of the given book of record (ModeAll replays every book).
func NewRebuildBalanceCommand(clientID kernel.UUID, mode ledger.Mode, dryRun bool) (RebuildBalanceCommand, error) {
	cmd := RebuildBalanceCommand{
		dryRun: dryRun,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setMode(mode),
	); err != nil {
		return RebuildBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RebuildBalanceCommand) Validate() error {
	return c.guard.Validate(ErrRebuildBalanceCommandIsNotConstructed)
}

// ClientID returns the identifier of the client whose balance to rebuild.
func (c RebuildBalanceCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Mode returns the ledger filter the rebuild replays.
func (c RebuildBalanceCommand) Mode() ledger.Mode {
	return c.mode
}

// DryRun reports whether the rebuild only measures drift.
func (c RebuildBalanceCommand) DryRun() bool {
	return c.dryRun
}

func (c *RebuildBalanceCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *RebuildBalanceCommand) setMode(mode ledger.Mode) error {
	if err := mode.ValidateFilter(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}
