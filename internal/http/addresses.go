package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
)

const entityAddress = "direccion"

type AddressesController struct {
	*entityController
	*resource[entities.Address, *entities.Address]
}

func NewAddressesController(base *entityController) *AddressesController {
	return &AddressesController{
		entityController: base,
		resource: newResource(base, entityAddress, func(repos *database.Repositories) lifecycleStore[entities.Address, *entities.Address] {
			return repos.Addresses
		}),
	}
}

// Create registers a client's address. A client can hold one address.
// POST /api/direccion
func (ac *AddressesController) Create(c *gin.Context) {
	var req addressRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	address := &entities.Address{}
	req.apply(address)

	err := ac.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := requireActive(ctx, entityClient, repos.Clients.FindByID, req.ClienteID); err != nil {
			return err
		}
		if err := repos.Addresses.Create(ctx, address); err != nil {
			return onDuplicate(err, "Direccion ya existe!!!")
		}
		return nil
	})
	if err != nil {
		respondError(c, ac.logger, err, entityAddress)
		return
	}

	ac.respondCreatedWithToken(c, entityAddress, "tokenDireccion", auth.KindAddress, address.ID, address)
}

// Update overwrites an address and marks it active again.
// PUT /api/direccion/:id
func (ac *AddressesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req addressRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var updated *entities.Address
	err := ac.uow.Transaction(ctx, func(repos *database.Repositories) error {
		if err := requireActive(ctx, entityClient, repos.Clients.FindByID, req.ClienteID); err != nil {
			return err
		}
		var err error
		updated, err = repos.Addresses.Update(ctx, id, req.apply)
		return err
	})
	if err != nil {
		respondError(c, ac.logger, err, entityAddress)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entityAddress: updated})
}

