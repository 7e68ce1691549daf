// Package lifecycle implements the soft-delete record lifecycle shared by
// every entity repository.
//
// A record is created active, overwritten in place on update (which also
// makes it active again) and logically removed by a soft delete that flips
// its status and stamps the deletion date. Records are never physically
// removed.
//
// # Usage
//
//	repo := lifecycle.New[entities.Author](db)
//	err := repo.Create(ctx, &author, map[string]any{"nombre": author.Nombre})
//	err = repo.SoftDelete(ctx, author.ID)
//
// Repositories are bound to a *gorm.DB, which may be a transaction handed
// out by the caller; see WithTx.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/entities"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Record is implemented by every entity that embeds entities.Lifecycle.
type Record interface {
	Life() *entities.Lifecycle
}

// Repository provides lifecycle-aware CRUD for records of type T.
type Repository[T any, PT interface {
	*T
	Record
}] struct {
	db *gorm.DB
}

// New creates a repository for T. The pointer type is inferred.
func New[T any, PT interface {
	*T
	Record
}](db *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *Repository[T, PT]) WithTx(tx *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: tx}
}

// FindByID returns the record with the given id regardless of its status.
func (r *Repository[T, PT]) FindByID(ctx context.Context, id uint) (PT, error) {
	return r.FindOne(ctx, map[string]any{"id": id})
}

// FindOne returns the first record matching every column in conds,
// regardless of its status.
func (r *Repository[T, PT]) FindOne(ctx context.Context, conds map[string]any) (PT, error) {
	return findOne[T, PT](r.db.WithContext(ctx), conds)
}

// ListAll returns every record. An empty status returns soft-deleted records
// too.
func (r *Repository[T, PT]) ListAll(ctx context.Context, status entities.Status) ([]T, error) {
	records := []T{}
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts rec as an active record created today. If unique is not
// empty and any record (of any status) matches all of its columns, nothing
// is written and ErrConflict is returned.
func (r *Repository[T, PT]) Create(ctx context.Context, rec PT, unique map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(unique) > 0 {
			var count int64
			if err := tx.Model(new(T)).Where(unique).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check uniqueness: %w", err)
			}
			if count > 0 {
				return ErrConflict
			}
		}

		today := entities.Today()
		life := rec.Life()
		life.Estado = entities.StatusActive
		life.FCreacion = &today
		life.FModificacion = nil
		life.FEliminacion = nil

		return tx.Create(rec).Error
	})
}

// Update applies the caller's edits to the record with the given id, makes
// it active again (clearing any deletion date) and stamps the modification
// date.
func (r *Repository[T, PT]) Update(ctx context.Context, id uint, apply func(PT)) (PT, error) {
	return r.UpdateWhere(ctx, map[string]any{"id": id}, apply)
}

// UpdateWhere is Update for records addressed by columns other than id.
func (r *Repository[T, PT]) UpdateWhere(ctx context.Context, conds map[string]any, apply func(PT)) (PT, error) {
	var rec PT
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findOne[T, PT](tx, conds)
		if err != nil {
			return err
		}

		apply(found)

		today := entities.Today()
		life := found.Life()
		life.Estado = entities.StatusActive
		life.FModificacion = &today
		life.FEliminacion = nil

		if err := tx.Save(found).Error; err != nil {
			return err
		}
		rec = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SoftDelete marks the record with the given id as deleted. Deleting a
// missing or already deleted record returns ErrNotFound.
func (r *Repository[T, PT]) SoftDelete(ctx context.Context, id uint) error {
	return r.SoftDeleteWhere(ctx, map[string]any{"id": id})
}

// SoftDeleteWhere is SoftDelete for records addressed by columns other than id.
func (r *Repository[T, PT]) SoftDeleteWhere(ctx context.Context, conds map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := findOne[T, PT](tx, conds)
		if err != nil {
			return err
		}
		life := rec.Life()
		if life.IsDeleted() {
			return ErrNotFound
		}

		today := entities.Today()
		err = tx.Model(rec).Updates(map[string]any{
			"estado":        entities.StatusDeleted,
			"f_eliminacion": today,
		}).Error
		if err != nil {
			return err
		}

		life.Estado = entities.StatusDeleted
		life.FEliminacion = &today
		return nil
	})
}

func findOne[T any, PT interface {
	*T
	Record
}](db *gorm.DB, conds map[string]any) (PT, error) {
	var rec T
	err := db.Where(conds).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return PT(&rec), nil
}
