package config

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Log
		Demo
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}

	Auth struct {
		JWTSecret      string
		JWTIssuer      string
		TokenTTL       time.Duration // register and login tokens
		EntityTokenTTL time.Duration // tokens returned when creating other records
		BcryptCost     int

		// RequireToken protects every /api route except register and login.
		// When false only the profile endpoint needs a bearer token.
		RequireToken bool

		// Rate limiting configuration
		MaxLoginAttempts int           // Max failed attempts before lockout, 0 disables (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}

	Log struct {
		Level  string
		Format string // text or json
	}

	// Demo mode serves the API read-only, except for login.
	Demo struct {
		Enabled bool
	}
)

// loadDotEnv reads variables from a .env file in the working directory, if
// one exists. Variables already present in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: could not load .env file: %v", err)
	}
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("jwt_secret_key", "") // Auto-generated if empty
	v.SetDefault("jwt_issuer", DefaultJWTIssuer)
	v.SetDefault("auth_token_ttl", "72h")
	v.SetDefault("auth_entity_token_ttl", "24h")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_require_token", false)
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("demo_mode", false)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			JWTSecret:        v.GetString("JWT_SECRET_KEY"),
			JWTIssuer:        v.GetString("JWT_ISSUER"),
			TokenTTL:         v.GetDuration("AUTH_TOKEN_TTL"),
			EntityTokenTTL:   v.GetDuration("AUTH_ENTITY_TOKEN_TTL"),
			BcryptCost:       v.GetInt("AUTH_BCRYPT_COST"),
			RequireToken:     v.GetBool("AUTH_REQUIRE_TOKEN"),
			MaxLoginAttempts: v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:  v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:  v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
	}
}
