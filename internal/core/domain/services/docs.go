// Package services holds pure domain services that operate across aggregates:
// the transition validator, which answers state-change questions for any
// document type, and the fulfillment reconciler, which recomputes a sale
// order's fulfillment state from its delivery records. Neither touches
// persistence; command handlers wire them into transactions.
package services
