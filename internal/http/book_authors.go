package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

const entityBookAuthor = "libroAutor"

// BookAuthorsController manages links between books and authors. Links are
// addressed by the author and book ids and have no editable fields.
type BookAuthorsController struct {
	*entityController
}

func NewBookAuthorsController(base *entityController) *BookAuthorsController {
	return &BookAuthorsController{entityController: base}
}

// List returns every link, soft-deleted ones included unless filtered with
// ?estado=.
// GET /api/libroAutor
func (bc *BookAuthorsController) List(c *gin.Context) {
	listRecords[entities.BookAuthor](c, bc.entityController, entityBookAuthor, bc.uow.Repositories().BookAuthors)
}

func parseLinkParams(c *gin.Context) (autorID, libroID uint, ok bool) {
	if autorID, ok = parseIDParam(c, "autorId"); !ok {
		return 0, 0, false
	}
	if libroID, ok = parseIDParam(c, "libroId"); !ok {
		return 0, 0, false
	}
	return autorID, libroID, true
}

// Create links an active author to an active book. Each pair is linked
// once. The returned token is minted for the book.
// POST /api/libroAutor
func (bc *BookAuthorsController) Create(c *gin.Context) {
	var req bookAuthorRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	link := &entities.BookAuthor{AutorID: req.AutorID, LibroID: req.LibroID}

	err := bc.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := requireActive(ctx, entityAuthor, repos.Authors.FindByID, req.AutorID); err != nil {
			return err
		}
		if err := requireActive(ctx, entityBook, repos.Books.FindByID, req.LibroID); err != nil {
			return err
		}
		return onDuplicate(repos.BookAuthors.Create(ctx, link), "libroAutor ya existe!!!")
	})
	if err != nil {
		respondError(c, bc.logger, err, entityBookAuthor)
		return
	}

	bc.respondCreatedWithToken(c, entityBookAuthor, "tokenLibroAutor", auth.KindBookAuthor, link.LibroID, link)
}

// Get returns an active link.
// GET /api/libroAutor/:autorId/:libroId
func (bc *BookAuthorsController) Get(c *gin.Context) {
	autorID, libroID, ok := parseLinkParams(c)
	if !ok {
		return
	}

	link, err := bc.uow.Repositories().BookAuthors.FindLink(c.Request.Context(), autorID, libroID)
	if err == nil && link.IsDeleted() {
		err = lifecycle.ErrNotFound
	}
	if err != nil {
		respondError(c, bc.logger, err, entityBookAuthor)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Update reactivates a link between an active author and an active book.
// PUT /api/libroAutor/:autorId/:libroId
func (bc *BookAuthorsController) Update(c *gin.Context) {
	autorID, libroID, ok := parseLinkParams(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var revived *entities.BookAuthor
	err := bc.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := requireActive(ctx, entityAuthor, repos.Authors.FindByID, autorID); err != nil {
			return err
		}
		if err := requireActive(ctx, entityBook, repos.Books.FindByID, libroID); err != nil {
			return err
		}
		var err error
		revived, err = repos.BookAuthors.Revive(ctx, autorID, libroID)
		return err
	})
	if err != nil {
		respondError(c, bc.logger, err, entityBookAuthor)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entityBookAuthor: revived})
}

// Delete soft deletes a link.
// DELETE /api/libroAutor/:autorId/:libroId
func (bc *BookAuthorsController) Delete(c *gin.Context) {
	autorID, libroID, ok := parseLinkParams(c)
	if !ok {
		return
	}

	if err := bc.uow.Repositories().BookAuthors.DeleteLink(c.Request.Context(), autorID, libroID); err != nil {
		respondError(c, bc.logger, err, entityBookAuthor)
		return
	}
	respondDeleted(c, entityBookAuthor)
}
