package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyClientID holds the authenticated client id in the gin context.
const ContextKeyClientID = "auth_client_id"

// Authenticator resolves a bearer token to a client id.
type Authenticator interface {
	Authenticate(token string) (uint, error)
}

// Middleware authenticates requests carrying a bearer token.
type Middleware struct {
	authenticator Authenticator
	publicPaths   map[string]bool
}

// NewMiddleware creates a new authentication middleware. Requests for
// publicPaths skip authentication under RequireTokenExceptPublic.
func NewMiddleware(authenticator Authenticator, publicPaths ...string) *Middleware {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}
	return &Middleware{
		authenticator: authenticator,
		publicPaths:   public,
	}
}

// RequireToken rejects requests without a valid client token with 401.
func (m *Middleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := m.authenticator.Authenticate(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMessage(err)})
			return
		}
		c.Set(ContextKeyClientID, clientID)
		c.Next()
	}
}

// RequireTokenExceptPublic behaves like RequireToken for every path that
// was not registered as public.
func (m *Middleware) RequireTokenExceptPublic() gin.HandlerFunc {
	require := m.RequireToken()
	return func(c *gin.Context) {
		if m.publicPaths[strings.TrimSuffix(c.Request.URL.Path, "/")] {
			c.Next()
			return
		}
		require(c)
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return "falta el token de autorizacion"
	case errors.Is(err, ErrTokenExpired):
		return "el token ha expirado"
	default:
		return "token invalido"
	}
}

// GetClientID retrieves the authenticated client id from the context.
func GetClientID(c *gin.Context) (uint, bool) {
	if id, exists := c.Get(ContextKeyClientID); exists {
		if clientID, ok := id.(uint); ok {
			return clientID, true
		}
	}
	return 0, false
}
