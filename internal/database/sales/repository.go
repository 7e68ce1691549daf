// Package sales provides database operations for sale and exchange records.
package sales

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Repository handles all sale/exchange database operations.
type Repository struct {
	*lifecycle.Repository[entities.Sale, *entities.Sale]
}

// NewRepository creates a new sales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.Sale](db)}
}

// Create inserts a sale. A book can be sold or exchanged only once.
func (r *Repository) Create(ctx context.Context, sale *entities.Sale) error {
	return r.Repository.Create(ctx, sale, map[string]any{"libro_id": sale.LibroID})
}

// FindByBook retrieves the sale recorded for a book.
func (r *Repository) FindByBook(ctx context.Context, libroID uint) (*entities.Sale, error) {
	return r.FindOne(ctx, map[string]any{"libro_id": libroID})
}
