package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./libreria.db"

	// DefaultJWTIssuer is the issuer claim stamped on every access token
	DefaultJWTIssuer = "bookexchange"
)
