package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
)

const entityAuthor = "autor"

type AuthorsController struct {
	*entityController
	*resource[entities.Author, *entities.Author]
}

func NewAuthorsController(base *entityController) *AuthorsController {
	return &AuthorsController{
		entityController: base,
		resource: newResource(base, entityAuthor, func(repos *database.Repositories) lifecycleStore[entities.Author, *entities.Author] {
			return repos.Authors
		}),
	}
}

// Create registers an author. Author names are unique.
// POST /api/autor
func (ac *AuthorsController) Create(c *gin.Context) {
	var req authorRequest
	if !bindRequest(c, &req) {
		return
	}

	author := &entities.Author{}
	req.apply(author)

	if err := ac.uow.Repositories().Authors.Create(c.Request.Context(), author); err != nil {
		respondError(c, ac.logger, onDuplicate(err, "autor ya existe!!!"), entityAuthor)
		return
	}

	ac.respondCreatedWithToken(c, entityAuthor, "tokenAutor", auth.KindAuthor, author.ID, author)
}

// Update overwrites an author and marks it active again.
// PUT /api/autor/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req authorRequest
	if !bindRequest(c, &req) {
		return
	}

	updated, err := ac.uow.Repositories().Authors.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		respondError(c, ac.logger, err, entityAuthor)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entityAuthor: updated})
}
