package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
	"github.com/mrlokans/bookexchange/internal/schema"
)

const (
	entitySale = "venta_permuta"

	msgForeignAddress = "direccion no pertenece al cliente"
)

type SalesController struct {
	*entityController
	*resource[entities.Sale, *entities.Sale]
}

func NewSalesController(base *entityController) *SalesController {
	return &SalesController{
		entityController: base,
		resource: newResource(base, entitySale, func(repos *database.Repositories) lifecycleStore[entities.Sale, *entities.Sale] {
			return repos.Sales
		}),
	}
}

// checkSaleReferences verifies the client, address and book of a sale are
// active and that the address is the client's own.
func checkSaleReferences(ctx context.Context, repos *database.Repositories, req *saleRequest) error {
	if err := requireActive(ctx, entityClient, repos.Clients.FindByID, req.ClienteID); err != nil {
		return err
	}
	address, err := findActive(ctx, repos.Addresses.FindByID, req.DireccionID)
	if err != nil {
		return asMissing(entityAddress, err)
	}
	if address.ClienteID != req.ClienteID {
		return &schema.FieldError{Field: "direccion_id", Message: msgForeignAddress}
	}
	return requireActive(ctx, entityBook, repos.Books.FindByID, req.LibroID)
}

// Create records a sale or exchange. A book can be sold or exchanged once.
// POST /api/venta_permuta
func (sc *SalesController) Create(c *gin.Context) {
	var req saleRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sale := &entities.Sale{}
	req.apply(sale)

	err := sc.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := checkSaleReferences(ctx, repos, &req); err != nil {
			return err
		}
		return onDuplicate(repos.Sales.Create(ctx, sale), "venta_permuta ya existe para este libro!!!")
	})
	if err != nil {
		respondError(c, sc.logger, err, entitySale)
		return
	}

	sc.respondCreatedWithToken(c, entitySale, "tokenVentaPermuta", auth.KindSale, sale.ID, sale)
}

// Update overwrites a sale and marks it active again.
// PUT /api/venta_permuta/:id
func (sc *SalesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req saleRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var updated *entities.Sale
	err := sc.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := checkSaleReferences(ctx, repos, &req); err != nil {
			return err
		}
		var err error
		updated, err = repos.Sales.Update(ctx, id, req.apply)
		return err
	})
	if err != nil {
		respondError(c, sc.logger, err, entitySale)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entitySale: updated})
}
