// Package authors provides database operations for book authors.
package authors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

type Repository struct {
	*lifecycle.Repository[entities.Author, *entities.Author]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.Author](db)}
}

// Create inserts an author. Names are unique.
func (r *Repository) Create(ctx context.Context, author *entities.Author) error {
	return r.Repository.Create(ctx, author, map[string]any{"nombre": author.Nombre})
}

func (r *Repository) FindByName(ctx context.Context, nombre string) (*entities.Author, error) {
	return r.FindOne(ctx, map[string]any{"nombre": nombre})
}
