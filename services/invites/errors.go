package invites

import "errors"

var (
	// ErrCodeNotFound is returned when no invitation code matches
	ErrCodeNotFound = errors.New("invitation code not found")

	// ErrCodeInactive is returned when the code has been deactivated
	ErrCodeInactive = errors.New("invitation code has been deactivated")

	// ErrCodeExpired is returned when the code's expiry lies in the past
	ErrCodeExpired = errors.New("invitation code has expired")

	// ErrCodeExhausted is returned when the code reached its use limit
	ErrCodeExhausted = errors.New("invitation code has reached its use limit")

	// ErrForbidden is returned when the caller may not manage codes
	ErrForbidden = errors.New("operation not permitted")

	// ErrMaxUsesNotPositive is returned when a code is created with a
	// non-positive use limit
	ErrMaxUsesNotPositive = errors.New("max uses must be positive")
)
