package models

import "time"

// User represents a vault account. Identity is the unique Email; both
// password fields hold bcrypt hashes and never the plaintext.
type User struct {
	// UserID is the server-assigned identifier. Only the session subject
	// carries it outside the storage layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// MasterPasswordHash is the bcrypt hash of the master password. The
	// master password itself is never stored in recoverable form.
	MasterPasswordHash string `json:"-"`

	// Attempts is the brute-force throttle state. It is changed only by the
	// login throttle.
	Attempts LoginAttempts `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// LoginAttempts holds the consecutive failed-login counter and the lockout
// deadline of a single account.
type LoginAttempts struct {
	// Count is the number of consecutive failed attempts since the last
	// success or strike.
	Count int

	// NextAllowedAttempt is the end of the current lockout. Nil means the
	// account has never been locked.
	NextAllowedAttempt *time.Time
}

// LockedAt reports whether the account is locked at the given moment.
func (a LoginAttempts) LockedAt(now time.Time) bool {
	return a.NextAllowedAttempt != nil && now.Before(*a.NextAllowedAttempt)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
