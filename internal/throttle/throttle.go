// Package throttle implements the per-account brute-force throttle applied
// to password logins.
//
// An account is Open while its lockout deadline is absent or in the past and
// Locked while the deadline is in the future. Each failed login increments a
// counter; the failure that reaches MaxAttempts resets the counter and sets
// the deadline to now+Lockout. A success resets the counter. The unlock is
// never stored: the deadline is simply compared with the clock.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/models"
)

const (
	DefaultMaxAttempts = 5
	DefaultLockout     = 15 * time.Minute
)

// AttemptStore persists throttle state. RecordFailedAttempt must apply the
// increment-or-strike transition as a single atomic operation.
type AttemptStore interface {
	UpdateUserAttempts(ctx context.Context, userID int64, attempts models.LoginAttempts) error
	RecordFailedAttempt(ctx context.Context, userID int64, maxAttempts int, lockedUntil time.Time) (models.LoginAttempts, error)
}

// Throttle gates password verification for an account.
type Throttle struct {
	store       AttemptStore
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time
}

// Option configures a [Throttle].
type Option func(*Throttle)

// WithClock replaces the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(t *Throttle) {
		t.now = now
	}
}

// New returns a throttle backed by store. Non-positive limits fall back to
// DefaultMaxAttempts and DefaultLockout.
func New(store AttemptStore, maxAttempts int, lockout time.Duration, opts ...Option) *Throttle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = DefaultLockout
	}

	t := &Throttle{
		store:       store,
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Lockout returns the configured lockout duration.
func (t *Throttle) Lockout() time.Duration {
	return t.lockout
}

// Check returns ErrLoginLocked when the account is currently locked. It must
// be called before any password hash is computed.
func (t *Throttle) Check(user models.User) error {
	if user.Attempts.LockedAt(t.now()) {
		return ErrLoginLocked
	}
	return nil
}

// RegisterFailure records one failed attempt and reports whether this
// failure applied a new lock.
func (t *Throttle) RegisterFailure(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	now := t.now()
	attempts, err := t.store.RecordFailedAttempt(ctx, userID, t.maxAttempts, now.Add(t.lockout))
	if err != nil {
		log.Err(err).Str("func", "Throttle.RegisterFailure").Int64("user_id", userID).Msg("error recording failed attempt")
		return false, fmt.Errorf("%w: %w", ErrThrottleState, err)
	}

	locked := attempts.LockedAt(now)
	if locked {
		log.Info().Str("func", "Throttle.RegisterFailure").Int64("user_id", userID).Time("until", *attempts.NextAllowedAttempt).Msg("account locked")
	}
	return locked, nil
}

// RegisterSuccess clears the failure counter.
func (t *Throttle) RegisterSuccess(ctx context.Context, user models.User) error {
	if user.Attempts.Count == 0 {
		return nil
	}

	reset := models.LoginAttempts{Count: 0, NextAllowedAttempt: user.Attempts.NextAllowedAttempt}
	if err := t.store.UpdateUserAttempts(ctx, user.UserID, reset); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Throttle.RegisterSuccess").Int64("user_id", user.UserID).Msg("error resetting attempts")
		return fmt.Errorf("%w: %w", ErrThrottleState, err)
	}
	return nil
}
