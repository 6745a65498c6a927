package config

import "time"

// Default values applied to every field no other source has set.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultDSN                = "site-vault.db"
	DefaultSessionIssuer      = "site-vault"
	DefaultSessionDuration    = time.Hour
	DefaultSessionCookie      = "SITE_VAULT_SESSION"
	DefaultHashCost           = 13
	DefaultLoginDelay         = 2 * time.Second
	DefaultMaxLoginAttempts   = 5
	DefaultLockoutDuration    = 15 * time.Minute
	DefaultMinPasswordEntropy = 50
	DefaultLogLevel           = "info"
	DefaultVersion            = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:      DefaultSessionIssuer,
			SessionDuration:    DefaultSessionDuration,
			SessionCookie:      DefaultSessionCookie,
			HashCost:           DefaultHashCost,
			LoginDelay:         DefaultLoginDelay,
			MaxLoginAttempts:   DefaultMaxLoginAttempts,
			LockoutDuration:    DefaultLockoutDuration,
			MinPasswordEntropy: DefaultMinPasswordEntropy,
			LogLevel:           DefaultLogLevel,
			Version:            DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
