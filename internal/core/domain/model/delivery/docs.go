// Package delivery implements the delivery aggregate: a shipment record that
// contributes item quantities to a sale order's fulfillment. Deliveries have
// their own lifecycle; cancelled deliveries stop counting toward the order's
// delivered sums on the next reconciliation pass.
package delivery
