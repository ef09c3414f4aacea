// Package client implements the client aggregate. Its cached balance is a
// denormalized read-performance field: by invariant it eventually equals the
// sum of the client's ledger (debits minus credits), and the ledger
// reconciler is the mechanism that detects and corrects drift.
package client

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not created
	// through the NewClient or RestoreClient factory methods.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client is a customer account. The cachedBalance field may legitimately
// drift from the ledger between writes; only the ledger reconciler (or the
// financial-event producers on their fast path) mutates it.
type Client struct {
	id            kernel.UUID
	name          string
	cachedBalance decimal.Decimal

	isConstructed bool
}

// NewClient creates a client with a zero cached balance.
func NewClient(id kernel.UUID, name string) (*Client, error) {
	c := &Client{
		cachedBalance: decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(id kernel.UUID, name string, cachedBalance decimal.Decimal) (*Client, error) {
	c, err := NewClient(id, name)
	if err != nil {
		return nil, err
	}

	c.cachedBalance = cachedBalance
	return c, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// CachedBalance returns the denormalized balance.
func (c *Client) CachedBalance() decimal.Decimal {
	return c.cachedBalance
}

// SetCachedBalance overwrites the denormalized balance with a value rebuilt
// from the ledger.
func (c *Client) SetCachedBalance(balance decimal.Decimal) {
	c.cachedBalance = balance
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
