// Package reservation implements the pickup slot and pickup reservation
// aggregates. Slot capacity is the engine's one contended resource; the
// aggregates express the rules (active statuses, capacity bound, penalty
// window) while the reservation manager enforces them under serializable
// isolation.
package reservation
