package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientsQueryHandler lists all clients.
type GetClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsQueryHandler creates a handler for client listings.
func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

// Handle returns every client ordered by name.
func (h GetClientsQueryHandler) Handle(
	ctx context.Context, _ GetClientsQuery,
) ([]ClientResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM clients
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]ClientResponse, 0)
	for rows.Next() {
		var rawID uuid.UUID
		var name string

		if err = rows.Scan(&rawID, &name); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		clients = append(clients, ClientResponse{ID: id, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
