package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/demo"
	"github.com/mrlokans/bookexchange/internal/logging"
)

// Routes reachable without a token when RequireToken is set.
var publicAPIPaths = []string{"/api/registrar", "/api/login"}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	// Trailing slashes are stripped by StripTrailingSlash instead of
	// redirected.
	router.RedirectTrailingSlash = false
	router.Use(logging.Middleware(logger))
	router.Use(gin.Recovery())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.DemoMode {
		logger.Info("demo mode enabled, write operations are blocked")
		router.Use(demo.NewMiddleware(true).Handler())
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Msg: "ruta no encontrada"})
	})

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	base := &entityController{uow: cfg.Database, tokens: cfg.Tokens, logger: logger}
	clients := NewClientsController(base, cfg.Accounts, cfg.LoginLimiter, cfg.Metrics)
	addresses := NewAddressesController(base)
	authors := NewAuthorsController(base)
	books := NewBooksController(base)
	bookAuthors := NewBookAuthorsController(base)
	sales := NewSalesController(base)

	authMiddleware := auth.NewMiddleware(cfg.Authenticator, publicAPIPaths...)
	api := router.Group("/api")
	profileAuth := authMiddleware.RequireToken()
	if cfg.RequireToken {
		api.Use(authMiddleware.RequireTokenExceptPublic())
		profileAuth = func(c *gin.Context) { c.Next() }
	}

	// Accounts
	api.POST("/registrar", clients.Register)
	api.POST("/login", clients.Login)
	api.GET("/perfil", profileAuth, clients.Profile)

	api.GET("/cliente", clients.List)
	api.GET("/cliente/:id", clients.Get)
	api.PUT("/cliente/:id", clients.Update)
	api.DELETE("/cliente/:id", clients.Delete)

	api.POST("/direccion", addresses.Create)
	api.GET("/direccion", addresses.List)
	api.GET("/direccion/:id", addresses.Get)
	api.PUT("/direccion/:id", addresses.Update)
	api.DELETE("/direccion/:id", addresses.Delete)

	// Catalogue
	api.POST("/autor", authors.Create)
	api.GET("/autor", authors.List)
	api.GET("/autor/:id", authors.Get)
	api.PUT("/autor/:id", authors.Update)
	api.DELETE("/autor/:id", authors.Delete)

	api.POST("/libro", books.Create)
	api.GET("/libro", books.List)
	api.GET("/libro/:id", books.Get)
	api.PUT("/libro/:id", books.Update)
	api.DELETE("/libro/:id", books.Delete)
	api.GET("/libro/:id/autores", books.Authors)

	api.POST("/libroAutor", bookAuthors.Create)
	api.GET("/libroAutor", bookAuthors.List)
	api.GET("/libroAutor/:autorId/:libroId", bookAuthors.Get)
	api.PUT("/libroAutor/:autorId/:libroId", bookAuthors.Update)
	api.DELETE("/libroAutor/:autorId/:libroId", bookAuthors.Delete)

	// Sales and exchanges
	api.POST("/venta_permuta", sales.Create)
	api.GET("/venta_permuta", sales.List)
	api.GET("/venta_permuta/:id", sales.Get)
	api.PUT("/venta_permuta/:id", sales.Update)
	api.DELETE("/venta_permuta/:id", sales.Delete)

	return router
}

// StripTrailingSlash serves "/api/libro/" as "/api/libro", so every route
// accepts an optional trailing slash without a redirect.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			r.URL.Path = strings.TrimRight(p, "/")
			if r.URL.RawPath != "" {
				r.URL.RawPath = strings.TrimRight(r.URL.RawPath, "/")
			}
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
		}
		next.ServeHTTP(w, r)
	})
}
