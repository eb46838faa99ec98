package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the ecosort
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session token parameters and
	// the built-in administrative credential.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the persistence backends: the
	// relational database and the upload file area.
	Storage Storage `envPrefix:"STORAGE_"`

	// Model holds configuration for the on-device classification model.
	Model Model `envPrefix:"MODEL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and the hardcoded admin credential.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionDuration specifies how long a browser session remains valid
	// after login (e.g. "24h", "30m").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// AdminUsername is the hardcoded administrative login checked before
	// the store is consulted.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the hardcoded administrative password.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing of a single request when
	// non-zero. Zero leaves the server without timeouts, matching the
	// reference behavior.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`

	// Uploads holds the file-system settings for stored photo uploads.
	Uploads Uploads `envPrefix:"UPLOADS_"`
}

// DB holds connection settings for the SQLite database backend.
type DB struct {
	// DSN is the SQLite data source name, typically a file path
	// (e.g. "ecosort.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Uploads holds file-system settings for the uploaded photo area.
type Uploads struct {
	// Dir is the directory where uploaded photos are stored and served
	// from. Created at startup if missing. Files are never cleaned up or
	// deduplicated.
	// Env: STORAGE_UPLOADS_DIR
	Dir string `env:"DIR"`
}

// Model holds configuration for the pre-trained classification artifact.
type Model struct {
	// Path is the location of the TFLite model file loaded once at
	// process start.
	// Env: MODEL_PATH
	Path string `env:"PATH"`

	// Threads is the number of interpreter threads used for a forward
	// pass.
	// Env: MODEL_THREADS
	Threads int `env:"THREADS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults (fill whatever is still unset)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
