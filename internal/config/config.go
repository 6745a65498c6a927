// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// site-vault server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, credential-protection and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the vault database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and TLS settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSecret signs session tokens. Required.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionIssuer is the "iss" claim of every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is the absolute session lifetime (e.g. "1h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionCookie is the name of the session cookie.
	// Env: APP_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`

	// InsecureCookie drops the Secure cookie attribute. Only for plain-HTTP
	// development setups.
	// Env: APP_INSECURE_COOKIE
	InsecureCookie bool `env:"INSECURE_COOKIE"`

	// HashCost is the bcrypt work factor of stored credentials.
	// Env: APP_HASH_COST
	HashCost int `env:"HASH_COST"`

	// LoginDelay is the fixed delay applied to every login attempt.
	// Env: APP_LOGIN_DELAY
	LoginDelay time.Duration `env:"LOGIN_DELAY"`

	// MaxLoginAttempts is the number of consecutive failures that lock an
	// account.
	// Env: APP_MAX_LOGIN_ATTEMPTS
	MaxLoginAttempts int `env:"MAX_LOGIN_ATTEMPTS"`

	// LockoutDuration is how long a locked account stays locked.
	// Env: APP_LOCKOUT_DURATION
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`

	// MinPasswordEntropy is the minimum estimated entropy in bits of a new
	// password.
	// Env: APP_MIN_PASSWORD_ENTROPY
	MinPasswordEntropy float64 `env:"MIN_PASSWORD_ENTROPY"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL, anything else is treated as an SQLite file path or
	// "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network, timeout and TLS settings of the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// TLSEnabled reports whether both TLS files are configured.
func (s Server) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the environment, the process arguments, the optional JSON file and
// the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
