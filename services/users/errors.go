package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches
	ErrUserNotFound = errors.New("user not found")

	// ErrGroupNotFound is returned when no group matches
	ErrGroupNotFound = errors.New("group not found")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email address is already registered")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when the password is too short
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrInvalidCredentials is returned on a failed login. Deliberately the
	// same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserBlocked is returned when a blocked profile tries to sign in
	ErrUserBlocked = errors.New("account is blocked")

	// ErrWrongPassword is returned when the current password does not match
	// on a password change
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrResetTokenInvalid is returned when a reset token is unknown or expired
	ErrResetTokenInvalid = errors.New("password reset token is invalid or expired")

	// ErrForbidden is returned when the caller lacks the required capability
	ErrForbidden = errors.New("operation not permitted")

	// ErrNoGroup is returned when the caller is not assigned to a group
	ErrNoGroup = errors.New("user is not assigned to a group")

	// ErrNameRequired is returned when a group is created without a name
	ErrNameRequired = errors.New("group name must not be empty")
)
