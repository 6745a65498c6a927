package throttle

import "errors"

var (
	// ErrLoginLocked is returned by Check while the lockout deadline is in the future.
	ErrLoginLocked = errors.New("login temporarily disabled")

	// ErrThrottleState is returned when the throttle state cannot be read or written.
	ErrThrottleState = errors.New("throttle state unavailable")
)
