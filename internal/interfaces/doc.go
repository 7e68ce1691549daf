// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - UnitOfWork: repositories bound to the database or a transaction (internal/http/stores.go)
//   - Store: UnitOfWork plus a liveness check, the router's view of the database (internal/http/stores.go)
//   - Pinger: database liveness for /health (internal/http/health.go)
//   - ClientRepository: client persistence used by the account service (internal/auth/service.go)
//
// ## Authentication Interfaces
//
//   - AccountService: register, login and profile lookups (internal/http/stores.go)
//   - EntityTokenIssuer: tokens returned alongside created records (internal/http/stores.go)
//   - Authenticator: bearer token validation for the auth middleware (internal/auth/middleware.go)
//
// All three are implemented by *auth.Service.
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities/, embedding entities.Lifecycle
//
//  2. Create sub-package internal/database/<entity>/ wrapping the generic
//     lifecycle repository:
//
//     type Repository struct {
//         *lifecycle.Repository[entities.Thing, *entities.Thing]
//     }
//
//  3. Add it to database.Repositories and to the migration list
//
//  4. Add a controller in internal/http/ that embeds *entityController and
//     *resource, and register its routes in router.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the checks in this module.
package interfaces
