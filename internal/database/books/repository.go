// Package books provides database operations for the book catalogue.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByTitle(ctx, "Papelucho")
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	*lifecycle.Repository[entities.Book, *entities.Book]
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.Book](db)}
}

// Create inserts a book. Titles are unique across the catalogue.
func (r *Repository) Create(ctx context.Context, book *entities.Book) error {
	return r.Repository.Create(ctx, book, map[string]any{"titulo": book.Titulo})
}

// FindByTitle retrieves a book by its exact title regardless of status.
func (r *Repository) FindByTitle(ctx context.Context, titulo string) (*entities.Book, error) {
	return r.FindOne(ctx, map[string]any{"titulo": titulo})
}
