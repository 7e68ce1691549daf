package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
)

const entityBook = "libro"

type BooksController struct {
	*entityController
	*resource[entities.Book, *entities.Book]
}

func NewBooksController(base *entityController) *BooksController {
	return &BooksController{
		entityController: base,
		resource: newResource(base, entityBook, func(repos *database.Repositories) lifecycleStore[entities.Book, *entities.Book] {
			return repos.Books
		}),
	}
}

// Create registers a book. Titles are unique.
// POST /api/libro
func (bc *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if !bindRequest(c, &req) {
		return
	}

	book := &entities.Book{}
	req.apply(book)

	if err := bc.uow.Repositories().Books.Create(c.Request.Context(), book); err != nil {
		respondError(c, bc.logger, onDuplicate(err, "titulo ya existe!!!"), entityBook)
		return
	}

	bc.respondCreatedWithToken(c, entityBook, "tokenLibro", auth.KindBook, book.ID, book)
}

// Update overwrites a book and marks it active again.
// PUT /api/libro/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req bookRequest
	if !bindRequest(c, &req) {
		return
	}

	updated, err := bc.uow.Repositories().Books.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		respondError(c, bc.logger, err, entityBook)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entityBook: updated})
}

// Authors lists the active authors linked to an active book.
// GET /api/libro/:id/autores
func (bc *BooksController) Authors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var authors []entities.Author
	err := bc.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := requireActive(ctx, entityBook, repos.Books.FindByID, id); err != nil {
			return err
		}
		var err error
		authors, err = repos.BookAuthors.AuthorsOf(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, bc.logger, err, entityBook)
		return
	}

	c.JSON(http.StatusOK, authors)
}
