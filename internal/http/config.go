package http

import (
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/metrics"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database Store
	Logger   logrus.FieldLogger

	// Authentication. Accounts, Tokens and Authenticator are usually the
	// same *auth.Service.
	Accounts      AccountService
	Tokens        EntityTokenIssuer
	Authenticator auth.Authenticator
	LoginLimiter  *auth.LoginLimiter // nil disables login rate limiting

	// RequireToken protects every /api route except register and login.
	RequireToken bool

	// DemoMode rejects writes other than login with 403.
	DemoMode bool

	// Metrics collection (optional)
	Metrics *metrics.Metrics

	// Application info
	Version string
}
