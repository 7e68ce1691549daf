package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
	"github.com/mrlokans/bookexchange/internal/metrics"
)

const (
	entityClient = "cliente"

	msgBadCredentials  = "correo/contrasenia es incorrecto!!!"
	msgPasswordTooLong = "contrasenia no puede superar 72 bytes"
	msgTooManyAttempts = "demasiados intentos fallidos, intente mas tarde"
)

// ClientsController serves registration, login, the profile and the client
// records themselves.
type ClientsController struct {
	*entityController
	*resource[entities.Client, *entities.Client]
	accounts AccountService
	limiter  *auth.LoginLimiter
	metrics  *metrics.Metrics
}

func NewClientsController(base *entityController, accounts AccountService, limiter *auth.LoginLimiter, m *metrics.Metrics) *ClientsController {
	return &ClientsController{
		entityController: base,
		resource: newResource(base, entityClient, func(repos *database.Repositories) lifecycleStore[entities.Client, *entities.Client] {
			return repos.Clients
		}),
		accounts: accounts,
		limiter:  limiter,
		metrics:  m,
	}
}

// Register creates a client account and returns it with an access token.
// POST /api/registrar
func (cc *ClientsController) Register(c *gin.Context) {
	var req registerRequest
	if !bindRequest(c, &req) {
		return
	}

	client, token, err := cc.accounts.Register(c.Request.Context(), auth.Registration{
		NombreCompleto: req.NombreCompleto,
		Correo:         req.Correo,
		Contrasenia:    req.Contrasenia,
		Telefono:       req.Telefono,
	})
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		respondDuplicate(c, "correo ya existe!!!")
		return
	case errors.Is(err, auth.ErrPasswordTooLong):
		respondBadRequest(c, msgPasswordTooLong)
		return
	case err != nil:
		respondInternalError(c, cc.logger, err, "register client")
		return
	}

	respondCreated(c, gin.H{"usuario": client, "access_token": token})
}

// Login exchanges credentials for an access token. Repeated failures from
// the same IP for the same email are locked out for a while.
// POST /api/login
func (cc *ClientsController) Login(c *gin.Context) {
	var req loginRequest
	if !bindRequest(c, &req) {
		return
	}

	ip := c.ClientIP()
	if allowed, retryAfter := cc.limiter.Allow(ip, req.Correo); !allowed {
		cc.metrics.RecordLogin(metrics.LoginRateLimited)
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Msg: msgTooManyAttempts})
		return
	}

	client, token, err := cc.accounts.Login(c.Request.Context(), req.Correo, req.Contrasenia)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		cc.metrics.RecordLogin(metrics.LoginFailed)
		if locked, _ := cc.limiter.RecordFailure(ip, req.Correo); locked {
			cc.logger.WithField("client_ip", ip).Warn("login locked out after repeated failures")
		}
		respondBadRequest(c, msgBadCredentials)
		return
	}
	if err != nil {
		respondInternalError(c, cc.logger, err, "login")
		return
	}

	cc.limiter.RecordSuccess(ip, req.Correo)
	cc.metrics.RecordLogin(metrics.LoginSucceeded)
	c.JSON(http.StatusOK, gin.H{"usuario": client, "tokenLogin": token})
}

// Profile returns the client the bearer token was issued for.
// GET /api/perfil
func (cc *ClientsController) Profile(c *gin.Context) {
	clientID, ok := auth.GetClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "token invalido"})
		return
	}

	client, err := cc.accounts.Profile(c.Request.Context(), clientID)
	if errors.Is(err, auth.ErrClientNotFound) {
		respondNotFound(c, entityClient)
		return
	}
	if err != nil {
		respondInternalError(c, cc.logger, err, "profile")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Update overwrites a client and marks it active again. The password is
// rehashed only when one is sent.
// PUT /api/cliente/:id
func (cc *ClientsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req clientUpdateRequest
	if !bindRequest(c, &req) {
		return
	}

	var passwordHash string
	if req.Contrasenia != "" {
		var err error
		if passwordHash, err = cc.accounts.HashPassword(req.Contrasenia); err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				respondBadRequest(c, msgPasswordTooLong)
				return
			}
			respondInternalError(c, cc.logger, err, "hash password")
			return
		}
	}

	updated, err := cc.uow.Repositories().Clients.Update(c.Request.Context(), id, func(client *entities.Client) {
		client.NombreCompleto = req.NombreCompleto
		client.Correo = req.Correo
		client.Telefono = req.Telefono
		if passwordHash != "" {
			client.Contrasenia = passwordHash
		}
	})
	if err != nil {
		respondError(c, cc.logger, err, entityClient)
		return
	}

	c.JSON(http.StatusCreated, gin.H{entityClient: updated})
}
