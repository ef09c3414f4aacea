package queries

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// GetClientsQuery retrieves all client identifiers. The balance audit job uses
// it to iterate the client base.
type GetClientsQuery struct{}

// NewGetClientsQuery creates a query for all clients.
func NewGetClientsQuery() GetClientsQuery {
	return GetClientsQuery{}
}

// ClientResponse is one client in the listing.
type ClientResponse struct {
	ID   kernel.UUID
	Name string
}
