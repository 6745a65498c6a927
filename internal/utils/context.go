// Package utils holds small helpers shared by the service and HTTP layers:
// typed context keys, the cancellable login delay, JSON responses, local
// redirect checks and identifier generation.
package utils

import (
	"context"
	"time"

	"github.com/MKhiriev/site-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the user id taken from a valid session token.
	UserIDCtxKey = contextKey("userID")

	// UserCtxKey stores the resolved current [models.User].
	UserCtxKey = contextKey("user")
)

// GetUserIDFromContext retrieves the session user id.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUser returns a copy of ctx carrying user and its id.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.UserID)
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the user stored by WithUser.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// SleepContext blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when interrupted.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
