package salesorder

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSaleItemIsNotConstructed is returned when a SaleItem instance was not created
	// through the NewSaleItem or RestoreSaleItem factory methods.
	ErrSaleItemIsNotConstructed = errors.New("SaleItem must be created via NewSaleItem constructor")
)

// SaleItem is a line of a sale order. It tracks how much of the ordered
// quantity has been delivered across all shipments and how much is still
// pending.
//
// Invariant: deliveredQty + pendingQty == orderedQty after every
// reconciliation pass. The quantities are never patched incrementally;
// ApplyDelivered always receives the full recomputed delivered sum.
type SaleItem struct {
	id      kernel.UUID
	orderID kernel.UUID

	// product is the human-readable product reference for the line.
	product string

	orderedQty   int
	deliveredQty int
	pendingQty   int

	isConstructed bool
}

// NewSaleItem creates a sale item with no delivery activity: the full ordered
// quantity is pending.
func NewSaleItem(id, orderID kernel.UUID, product string, orderedQty int) (*SaleItem, error) {
	item := &SaleItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProduct(product),
		item.setOrderedQty(orderedQty),
	); err != nil {
		return nil, err
	}

	item.deliveredQty = 0
	item.pendingQty = orderedQty
	return item, nil
}

// RestoreSaleItem reconstructs a sale item from persistence, verifying the
// quantity conservation invariant on the way in.
func RestoreSaleItem(
	id, orderID kernel.UUID, product string, orderedQty, deliveredQty, pendingQty int,
) (*SaleItem, error) {
	item, err := NewSaleItem(id, orderID, product, orderedQty)
	if err != nil {
		return nil, err
	}

	if deliveredQty < 0 || pendingQty < 0 || deliveredQty+pendingQty != orderedQty {
		return nil, errs.NewDataIntegrityErrorWithCause(
			"delivered and pending quantities must sum to the ordered quantity",
			fmt.Errorf("item %s: ordered=%d delivered=%d pending=%d",
				id, orderedQty, deliveredQty, pendingQty))
	}

	item.deliveredQty = deliveredQty
	item.pendingQty = pendingQty
	return item, nil
}

// Validate ensures the SaleItem instance was properly constructed.
func (i *SaleItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrSaleItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *SaleItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning sale order.
func (i *SaleItem) OrderID() kernel.UUID {
	return i.orderID
}

// Product returns the product reference of the line.
func (i *SaleItem) Product() string {
	return i.product
}

// OrderedQty returns the quantity originally ordered.
func (i *SaleItem) OrderedQty() int {
	return i.orderedQty
}

// DeliveredQty returns the quantity delivered so far across all shipments.
func (i *SaleItem) DeliveredQty() int {
	return i.deliveredQty
}

// PendingQty returns the quantity still awaiting delivery.
func (i *SaleItem) PendingQty() int {
	return i.pendingQty
}

// IsFullyDelivered reports whether nothing remains to ship for this line.
func (i *SaleItem) IsFullyDelivered() bool {
	return i.deliveredQty >= i.orderedQty
}

// ApplyDelivered sets the delivered quantity to the full recomputed sum across
// all non-cancelled shipments and derives the pending quantity from it.
//
// A sum exceeding the ordered quantity means an upstream producer over-delivered;
// that is a DataIntegrityError, never silently clamped.
func (i *SaleItem) ApplyDelivered(totalDelivered int) error {
	if totalDelivered < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalDelivered",
			fmt.Errorf("%d is negative", totalDelivered))
	}
	if totalDelivered > i.orderedQty {
		return errs.NewDataIntegrityErrorWithCause(
			"delivered quantity exceeds ordered quantity",
			fmt.Errorf("item %s: ordered=%d delivered=%d", i.id, i.orderedQty, totalDelivered))
	}

	i.deliveredQty = totalDelivered
	i.pendingQty = i.orderedQty - totalDelivered
	return nil
}

func (i *SaleItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *SaleItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *SaleItem) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	i.product = product
	return nil
}

func (i *SaleItem) setOrderedQty(orderedQty int) error {
	if orderedQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderedQty",
			fmt.Errorf("%d is not greater than 0", orderedQty))
	}
	i.orderedQty = orderedQty
	return nil
}
