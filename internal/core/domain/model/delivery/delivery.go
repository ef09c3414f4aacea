package delivery

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through the NewDelivery or RestoreDelivery factory methods.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryItemIsNotConstructed is returned when a DeliveryItem instance was not
	// created through the NewDeliveryItem factory method.
	ErrDeliveryItemIsNotConstructed = errors.New("DeliveryItem must be created via NewDeliveryItem constructor")
)

// Delivery is a shipment record belonging to exactly one sale order. A sale
// order may have many deliveries (partial, multi-shipment fulfillment); each
// delivery contributes its item quantities to the order's delivered sums as
// long as it is not cancelled.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  Status
	items   []*DeliveryItem

	isConstructed bool
}

// DeliveryItem records the quantity a single delivery contributes to one sale
// item. The same sale item may be referenced by items of many deliveries.
type DeliveryItem struct {
	id           kernel.UUID
	deliveryID   kernel.UUID
	saleItemID   kernel.UUID
	deliveredQty int

	isConstructed bool
}

// NewDelivery creates a delivery in Pending status with the given items.
func NewDelivery(id, orderID kernel.UUID, items []*DeliveryItem) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setItems(items),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence with its stored status.
func RestoreDelivery(id, orderID kernel.UUID, status Status, items []*DeliveryItem) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, orderID, items)
	if err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the sale order this delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Items returns the delivery's item contributions.
func (d *Delivery) Items() []*DeliveryItem {
	return d.items
}

// IsCancelled reports whether the delivery no longer counts toward fulfillment.
func (d *Delivery) IsCancelled() bool {
	return d.status == Cancelled
}

// Dispatch transitions the delivery from Pending to InTransit.
func (d *Delivery) Dispatch() error {
	return d.transition(InTransit)
}

// MarkPickedUp transitions the delivery from Pending to PickedUp.
func (d *Delivery) MarkPickedUp() error {
	return d.transition(PickedUp)
}

// MarkDelivered confirms the delivery reached the client. Only InTransit and
// PickedUp deliveries can be confirmed.
func (d *Delivery) MarkDelivered() error {
	return d.transition(Delivered)
}

// Cancel withdraws a pending delivery. Its item quantities stop counting
// toward the order's delivered sums on the next reconciliation pass.
func (d *Delivery) Cancel() error {
	return d.transition(Cancelled)
}

func (d *Delivery) transition(to Status) error {
	newStatus, err := d.status.TransitionTo(to)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setItems(items []*DeliveryItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	d.items = items
	return nil
}

// NewDeliveryItem creates a delivery item contributing the given quantity to a
// sale item. A zero quantity is legal: one shipment may cover only some lines
// of the order.
func NewDeliveryItem(id, deliveryID, saleItemID kernel.UUID, deliveredQty int) (*DeliveryItem, error) {
	item := &DeliveryItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDeliveryID(deliveryID),
		item.setSaleItemID(saleItemID),
		item.setDeliveredQty(deliveredQty),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the DeliveryItem instance was properly constructed.
func (i *DeliveryItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrDeliveryItemIsNotConstructed
	}
	return nil
}

// ID returns the delivery item's unique identifier.
func (i *DeliveryItem) ID() kernel.UUID {
	return i.id
}

// DeliveryID returns the identifier of the owning delivery.
func (i *DeliveryItem) DeliveryID() kernel.UUID {
	return i.deliveryID
}

// SaleItemID returns the identifier of the sale item this contribution targets.
func (i *DeliveryItem) SaleItemID() kernel.UUID {
	return i.saleItemID
}

// DeliveredQty returns the quantity this delivery contributes.
func (i *DeliveryItem) DeliveredQty() int {
	return i.deliveredQty
}

func (i *DeliveryItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *DeliveryItem) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	i.deliveryID = deliveryID
	return nil
}

func (i *DeliveryItem) setSaleItemID(saleItemID kernel.UUID) error {
	if err := saleItemID.Validate(); err != nil {
		return err
	}
	i.saleItemID = saleItemID
	return nil
}

func (i *DeliveryItem) setDeliveredQty(deliveredQty int) error {
	if deliveredQty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveredQty",
			fmt.Errorf("%d is negative", deliveredQty))
	}
	i.deliveredQty = deliveredQty
	return nil
}
