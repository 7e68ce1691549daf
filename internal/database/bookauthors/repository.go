// Package bookauthors provides database operations for the links between
// books and their authors.
//
// Links are addressed by the (autor_id, libro_id) pair rather than by a
// surrogate id, so this repository exposes key-based variants of the
// lifecycle operations.
package bookauthors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// Repository handles all book-author link operations.
type Repository struct {
	*lifecycle.Repository[entities.BookAuthor, *entities.BookAuthor]
	db *gorm.DB
}

// NewRepository creates a new book-author link repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Repository: lifecycle.New[entities.BookAuthor](db), db: db}
}

func linkKey(autorID, libroID uint) map[string]any {
	return map[string]any{"autor_id": autorID, "libro_id": libroID}
}

// Create inserts a link. Each author/book pair may be linked once.
func (r *Repository) Create(ctx context.Context, link *entities.BookAuthor) error {
	return r.Repository.Create(ctx, link, linkKey(link.AutorID, link.LibroID))
}

// FindLink retrieves a link regardless of status.
func (r *Repository) FindLink(ctx context.Context, autorID, libroID uint) (*entities.BookAuthor, error) {
	return r.FindOne(ctx, linkKey(autorID, libroID))
}

// DeleteLink soft deletes a link.
func (r *Repository) DeleteLink(ctx context.Context, autorID, libroID uint) error {
	return r.SoftDeleteWhere(ctx, linkKey(autorID, libroID))
}

// Revive reactivates a link and stamps its modification date. Links have no
// editable fields, so this is the link's update.
func (r *Repository) Revive(ctx context.Context, autorID, libroID uint) (*entities.BookAuthor, error) {
	return r.UpdateWhere(ctx, linkKey(autorID, libroID), func(*entities.BookAuthor) {})
}

// AuthorsOf returns the active authors actively linked to a book.
func (r *Repository) AuthorsOf(ctx context.Context, libroID uint) ([]entities.Author, error) {
	authors := []entities.Author{}
	err := r.db.WithContext(ctx).
		Select("autores.*").
		Joins(`JOIN "libroAutor" ON "libroAutor".autor_id = autores.id`).
		Where(`"libroAutor".libro_id = ? AND "libroAutor".estado = ? AND autores.estado = ?`,
			libroID, entities.StatusActive, entities.StatusActive).
		Order("autores.id ASC").
		Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}
