// Package auth provides password hashing, access tokens and client
// authentication.
//
// Passwords are stored as bcrypt hashes. Access tokens are HS256 JWTs whose
// subject is a record id and whose "kind" claim names the record type; only
// client tokens authenticate requests.
//
// # Configuration
//
//	JWT_SECRET_KEY=<secret>        # Auto-generated if empty (tokens die on restart)
//	AUTH_TOKEN_TTL=72h             # Register and login tokens
//	AUTH_ENTITY_TOKEN_TTL=24h      # Tokens returned when creating other records
//	AUTH_BCRYPT_COST=12            # bcrypt cost factor
//	AUTH_REQUIRE_TOKEN=false       # Protect every /api route, not just /api/perfil
//
// # Usage
//
//	issuer := auth.NewTokenIssuer(secret, cfg.Auth.JWTIssuer)
//	authService := auth.NewService(repos.Clients, issuer, cfg.Auth)
//	mw := auth.NewMiddleware(authService, "/api/registrar", "/api/login")
//	router.GET("/api/perfil", mw.RequireToken(), handler)
//
// Extract the client in handlers:
//
//	clientID, ok := auth.GetClientID(c)
package auth
