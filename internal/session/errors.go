package session

import "errors"

var (
	// ErrEmptySecret is returned by NewManager when no signing secret is configured.
	ErrEmptySecret = errors.New("session secret is empty")

	// ErrSigningFailed is returned when a token cannot be signed.
	ErrSigningFailed = errors.New("error signing session token")

	// ErrInvalidToken is returned by Parse for any token that must be treated as absent.
	ErrInvalidToken = errors.New("invalid session token")
)
