package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/site-vault/models"
)

// UserRepository persists vault accounts and their throttle state.
type UserRepository interface {
	// FindUserByEmail returns ErrUserNotFound when no account has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns ErrUserNotFound when the id is unknown.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// CreateUser inserts user and returns it with the server-assigned fields.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUserAttempts overwrites the throttle state of an account.
	UpdateUserAttempts(ctx context.Context, userID int64, attempts models.LoginAttempts) error

	// RecordFailedAttempt atomically increments the failure counter. The
	// failure reaching maxAttempts resets the counter to zero and sets the
	// lockout deadline to lockedUntil. The resulting state is returned.
	RecordFailedAttempt(ctx context.Context, userID int64, maxAttempts int, lockedUntil time.Time) (models.LoginAttempts, error)
}

// SiteSecretRepository persists encrypted site secrets. Every lookup is
// scoped to the owning user; a foreign id behaves exactly like an unknown one.
type SiteSecretRepository interface {
	CreateSiteSecret(ctx context.Context, secret models.SiteSecret) (models.SiteSecret, error)
	ListSiteSecrets(ctx context.Context, userID int64) ([]models.SiteSecret, error)
	FindSiteSecret(ctx context.Context, userID int64, id string) (models.SiteSecret, error)
	DeleteSiteSecret(ctx context.Context, userID int64, id string) error
}

// ErrorClassificator recognises backend-specific driver errors.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}
