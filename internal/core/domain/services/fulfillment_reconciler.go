package services

import (
	"fmt"

	dlv "fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"
)

// FulfillmentReconciler recomputes a sale order's per-item delivered and
// pending quantities from the full set of its delivery records, then derives
// the order's aggregate status.
//
// The pass always recomputes from source instead of patching counters
// incrementally: missed increments, re-deliveries and corrected delivery
// records all self-heal on the next pass, at the cost of an
// O(items × deliveries) walk that stays cheap because reconciliation is
// scoped to one order.
//
// Reconcile mutates the order in memory only. The calling command handler is
// responsible for reading the deliveries and persisting the updated items and
// status inside one transaction, so that two concurrent passes over the same
// order cannot interleave.
type FulfillmentReconciler struct{}

// NewFulfillmentReconciler creates a fulfillment reconciler.
func NewFulfillmentReconciler() FulfillmentReconciler {
	return FulfillmentReconciler{}
}

// Reconcile applies the recompute-from-source pass to the order. Deliveries
// must all belong to the order; cancelled deliveries contribute nothing.
//
// A delivered sum exceeding an item's ordered quantity, or a delivery item
// referencing a line the order does not have, is a DataIntegrityError: the
// order is left untouched and nothing may be persisted.
func (r FulfillmentReconciler) Reconcile(order *salesorder.SaleOrder, deliveries []*dlv.Delivery) error {
	if err := order.Validate(); err != nil {
		return err
	}

	delivered, err := r.sumDelivered(order, deliveries)
	if err != nil {
		return err
	}

	// Check every sum before mutating anything, so a failed pass leaves the
	// aggregate untouched.
	for _, item := range order.Items() {
		sum := delivered[item.ID().String()]
		if sum > item.OrderedQty() {
			return errs.NewDataIntegrityErrorWithCause(
				"delivered quantity exceeds ordered quantity",
				fmt.Errorf("item %s: ordered=%d delivered=%d", item.ID(), item.OrderedQty(), sum))
		}
	}

	anyDelivered := false
	allDelivered := true
	for _, item := range order.Items() {
		sum := delivered[item.ID().String()]
		if err := item.ApplyDelivered(sum); err != nil {
			return err
		}
		if sum > 0 {
			anyDelivered = true
		}
		if !item.IsFullyDelivered() {
			allDelivered = false
		}
	}

	var target salesorder.Status
	switch {
	case allDelivered:
		target = salesorder.Delivered
	case anyDelivered:
		target = salesorder.PartiallyDelivered
	default:
		// No delivery activity yet; the order's state is left unchanged.
		return nil
	}

	// Delivered is terminal: a pass that recomputes the same terminal status
	// is a no-op, not a transition request. The PartiallyDelivered self-edge
	// stays a real transition because the table carries it explicitly.
	if target == order.Status() && target != salesorder.PartiallyDelivered {
		return nil
	}

	return order.ApplyFulfillmentStatus(target)
}

// sumDelivered totals the delivered quantity per sale item across all
// non-cancelled deliveries and verifies every contribution targets a line the
// order actually has.
func (r FulfillmentReconciler) sumDelivered(
	order *salesorder.SaleOrder, deliveries []*dlv.Delivery,
) (map[string]int, error) {
	delivered := make(map[string]int, len(order.Items()))
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.OrderID().IsEqual(order.ID()) {
			return nil, errs.NewDataIntegrityErrorWithCause(
				"delivery belongs to a different order",
				fmt.Errorf("delivery %s references order %s, reconciling order %s",
					d.ID(), d.OrderID(), order.ID()))
		}
		if d.IsCancelled() {
			continue
		}
		for _, di := range d.Items() {
			if order.Item(di.SaleItemID()) == nil {
				return nil, errs.NewDataIntegrityErrorWithCause(
					"delivery item references a line the order does not have",
					fmt.Errorf("delivery %s references sale item %s", d.ID(), di.SaleItemID()))
			}
			delivered[di.SaleItemID().String()] += di.DeliveredQty()
		}
	}
	return delivered, nil
}
