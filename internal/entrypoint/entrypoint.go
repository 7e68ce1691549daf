package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/config"
	"github.com/mrlokans/bookexchange/internal/database"
	http_controllers "github.com/mrlokans/bookexchange/internal/http"
	"github.com/mrlokans/bookexchange/internal/logging"
	"github.com/mrlokans/bookexchange/internal/metrics"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is a fully wired application ready to serve.
type App struct {
	Handler  http.Handler
	Database *database.Database
	Logger   *logrus.Logger

	limiter *auth.LoginLimiter
}

// Close releases background workers and the database connection.
func (a *App) Close() error {
	a.limiter.Stop()
	return a.Database.Close()
}

// signingKey returns the configured JWT secret or a random one. A random
// key invalidates every token on restart.
func signingKey(cfg config.Auth, logger logrus.FieldLogger) ([]byte, error) {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret), nil
	}
	secret, err := auth.GenerateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	logger.Warn("JWT_SECRET_KEY is not set, using a random key; tokens will not survive a restart")
	return []byte(secret), nil
}

// Build wires configuration, database, auth and the router together.
func Build(cfg *config.Config, logger *logrus.Logger, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path, database.WithLogger(logger, cfg.Database.LogLevel))
	if err != nil {
		return nil, err
	}

	key, err := signingKey(cfg.Auth, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	repos := db.Repositories()
	authService := auth.NewService(repos.Clients, auth.NewTokenIssuer(key, cfg.Auth.JWTIssuer), cfg.Auth)
	limiter := auth.NewLoginLimiter(auth.LimiterConfigFrom(cfg.Auth))

	if cfg.Auth.RequireToken {
		logger.Info("bearer token required on every /api route except register and login")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		Logger:        logger,
		Accounts:      authService,
		Tokens:        authService,
		Authenticator: authService,
		LoginLimiter:  limiter,
		RequireToken:  cfg.Auth.RequireToken,
		DemoMode:      cfg.Demo.Enabled,
		Metrics:       metrics.New(),
		Version:       version,
	})

	return &App{
		Handler:  http_controllers.StripTrailingSlash(router),
		Database: db,
		Logger:   logger,
		limiter:  limiter,
	}, nil
}

func Serve(handler http.Handler, cfg *config.Config, logger logrus.FieldLogger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		// Stopped without a signal, usually a listen failure
		runShutdown(onShutdown, timeout)
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}
	logger.WithField("timeout", timeout).Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	runShutdown(onShutdown, timeout)
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	logger.Info("server exiting")
	return nil
}

func runShutdown(onShutdown ShutdownFunc, timeout time.Duration) {
	if onShutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	onShutdown(ctx)
}

// Run builds the application and serves it until interrupted.
func Run(cfg *config.Config, version string) error {
	gin.SetMode(cfg.HTTP.GinMode)
	logger := logging.New(cfg.Log)
	logger.WithField("version", version).Info("starting bookexchange")

	app, err := Build(cfg, logger, version)
	if err != nil {
		return err
	}

	return Serve(app.Handler, cfg, logger, func(ctx context.Context) {
		if err := app.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	})
}
