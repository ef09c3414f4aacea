package salesorder

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSaleOrderIsNotConstructed is returned when a SaleOrder instance was not created
	// through the NewSaleOrder or RestoreSaleOrder factory methods.
	ErrSaleOrderIsNotConstructed = errors.New("SaleOrder must be created via NewSaleOrder constructor")
)

// SaleOrder is the aggregate root for a sales document. It owns its line items
// and guards every status change behind the Status transition table.
//
// The delivered and pending quantities on its items are derived state: they are
// recomputed from the order's delivery records by the fulfillment reconciler,
// never patched in place. The aggregate only exposes the operations the
// reconciler and the explicit lifecycle commands need.
type SaleOrder struct {
	id       kernel.UUID
	clientID kernel.UUID
	total    decimal.Decimal
	status   Status
	items    []*SaleItem

	isConstructed bool
}

// NewSaleOrder creates a sale order in Draft status with the given items.
// The order must have at least one item and a non-negative total.
func NewSaleOrder(id, clientID kernel.UUID, total decimal.Decimal, items []*SaleItem) (*SaleOrder, error) {
	order := &SaleOrder{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setTotal(total),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreSaleOrder reconstructs a sale order from persistence with its stored
// status. Used by repositories when rehydrating the aggregate.
func RestoreSaleOrder(
	id, clientID kernel.UUID, total decimal.Decimal, status Status, items []*SaleItem,
) (*SaleOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewSaleOrder(id, clientID, total, items)
	if err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the SaleOrder instance was properly constructed.
func (o *SaleOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrSaleOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *SaleOrder) IsEqual(other *SaleOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *SaleOrder) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client the order belongs to.
func (o *SaleOrder) ClientID() kernel.UUID {
	return o.clientID
}

// Total returns the monetary total of the order.
func (o *SaleOrder) Total() decimal.Decimal {
	return o.total
}

// Status returns the current status of the order.
func (o *SaleOrder) Status() Status {
	return o.status
}

// Items returns the order's line items.
func (o *SaleOrder) Items() []*SaleItem {
	return o.items
}

// Item returns the line item with the given identifier, or nil if the order
// has no such line.
func (o *SaleOrder) Item(itemID kernel.UUID) *SaleItem {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// Confirm transitions the order from Draft to Confirmed.
func (o *SaleOrder) Confirm() error {
	newStatus, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Only Draft and Confirmed orders can be
// cancelled; orders with delivery activity cannot.
func (o *SaleOrder) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyFulfillmentStatus moves the order to the status the reconciler derived
// from its delivery records. The transition table authorizes the change; a
// rejected transition (for example on a cancelled order) aborts the whole
// reconciliation pass.
func (o *SaleOrder) ApplyFulfillmentStatus(target Status) error {
	if target != PartiallyDelivered && target != Delivered {
		return errs.NewInvalidTransitionError(DocType, o.status.String(), target.String())
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *SaleOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *SaleOrder) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *SaleOrder) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("total")
	}
	o.total = total
	return nil
}

func (o *SaleOrder) setItems(items []*SaleItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
