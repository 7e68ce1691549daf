// Package demo provides a read-only demo mode for the API and the sample
// data used to populate demo databases.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations in demo mode. Reads always pass, as
// does login so visitors can try the profile endpoint.
type Middleware struct {
	enabled      bool
	allowedPaths []string
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{
		enabled:      enabled,
		allowedPaths: []string{"/api/login"},
	}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"msg":       "accion deshabilitada en modo demo",
			"demo_mode": true,
		})
	}
}

// isAllowedPath checks if a path may be written to in demo mode.
func (m *Middleware) isAllowedPath(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, allowed := range m.allowedPaths {
		if path == allowed {
			return true
		}
	}
	return false
}
