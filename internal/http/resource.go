package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
)

// resource serves the list, read and delete routes every entity shares.
type resource[T any, PT deletable] struct {
	entity string
	store  func(repos *database.Repositories) lifecycleStore[T, PT]
	base   *entityController
}

func newResource[T any, PT deletable](base *entityController, entity string, store func(*database.Repositories) lifecycleStore[T, PT]) *resource[T, PT] {
	return &resource[T, PT]{entity: entity, store: store, base: base}
}

// List returns every record, soft-deleted ones included unless filtered
// with ?estado=.
func (r *resource[T, PT]) List(c *gin.Context) {
	listRecords[T](c, r.base, r.entity, r.store(r.base.uow.Repositories()))
}

// Get returns an active record by id.
func (r *resource[T, PT]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := findActive(c.Request.Context(), r.store(r.base.uow.Repositories()).FindByID, id)
	if err != nil {
		respondError(c, r.base.logger, err, r.entity)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete soft deletes a record. Deleting twice yields 404.
func (r *resource[T, PT]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := r.store(r.base.uow.Repositories()).SoftDelete(c.Request.Context(), id); err != nil {
		respondError(c, r.base.logger, err, r.entity)
		return
	}
	respondDeleted(c, r.entity)
}

// listRecords serves a list route from any lister.
func listRecords[T any](c *gin.Context, base *entityController, entity string, store lister[T]) {
	status, ok := parseStatusFilter(c)
	if !ok {
		return
	}

	records, err := store.ListAll(c.Request.Context(), status)
	if err != nil {
		respondInternalError(c, base.logger, err, "list "+entity)
		return
	}
	c.JSON(http.StatusOK, records)
}

// findActive loads a record and treats a soft-deleted one as missing.
func findActive[PT deletable](ctx context.Context, find func(context.Context, uint) (PT, error), id uint) (PT, error) {
	var zero PT
	record, err := find(ctx, id)
	if err != nil {
		return zero, err
	}
	if record.IsDeleted() {
		return zero, lifecycle.ErrNotFound
	}
	return record, nil
}

// requireActive checks that a referenced record exists and is active.
func requireActive[PT deletable](ctx context.Context, entity string, find func(context.Context, uint) (PT, error), id uint) error {
	_, err := findActive(ctx, find, id)
	return asMissing(entity, err)
}
