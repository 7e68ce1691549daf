package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/database/clients"
	"github.com/mrlokans/bookexchange/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store / UnitOfWork implementations
var _ http.Store = (*database.Database)(nil)
var _ http.UnitOfWork = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)

// ClientRepository implementations
var _ auth.ClientRepository = (*clients.Repository)(nil)

// =============================================================================
// Authentication
// =============================================================================

// AccountService implementations
var _ http.AccountService = (*auth.Service)(nil)

// EntityTokenIssuer implementations
var _ http.EntityTokenIssuer = (*auth.Service)(nil)

// Authenticator implementations
var _ auth.Authenticator = (*auth.Service)(nil)
