// Package salesorder implements the sale order aggregate.
//
// A SaleOrder owns its SaleItem lines and a Status value object with an
// explicit transition table. The delivered/pending quantities on items are
// derived from delivery records by the fulfillment reconciler; the aggregate
// enforces quantity conservation (delivered + pending == ordered) and refuses
// over-delivery as a data integrity violation.
package salesorder
