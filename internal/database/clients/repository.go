// Package clients provides database operations for client accounts.
//
// # Usage
//
//	repo := clients.NewRepository(db)
//	client, err := repo.FindByEmail(ctx, "ana@example.com")
package clients

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Repository handles all client database operations.
type Repository struct {
	*lifecycle.Repository[entities.Client, *entities.Client]
}

// NewRepository creates a new clients repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.Client](db)}
}

// Create inserts a client. The email must not belong to any existing
// client, deleted or not.
func (r *Repository) Create(ctx context.Context, client *entities.Client) error {
	return r.Repository.Create(ctx, client, map[string]any{"correo": client.Correo})
}

// FindByEmail retrieves a client by email regardless of status.
func (r *Repository) FindByEmail(ctx context.Context, correo string) (*entities.Client, error) {
	return r.FindOne(ctx, map[string]any{"correo": correo})
}
