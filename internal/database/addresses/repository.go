// Package addresses provides database operations for client addresses.
package addresses

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Repository handles all address database operations.
type Repository struct {
	*lifecycle.Repository[entities.Address, *entities.Address]
}

// NewRepository creates a new addresses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.Address](db)}
}

// Create inserts an address. A client may own a single address.
func (r *Repository) Create(ctx context.Context, address *entities.Address) error {
	return r.Repository.Create(ctx, address, map[string]any{"cliente_id": address.ClienteID})
}

// FindByClient retrieves the address registered for a client.
func (r *Repository) FindByClient(ctx context.Context, clienteID uint) (*entities.Address, error) {
	return r.FindOne(ctx, map[string]any{"cliente_id": clienteID})
}
