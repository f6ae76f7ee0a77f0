package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking exists with the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrEndNotAfterStart is returned when a booking window ends at or
	// before its start
	ErrEndNotAfterStart = errors.New("booking must end after it starts")

	// ErrGroupMismatch is returned when a caller tries to touch a booking
	// belonging to another group
	ErrGroupMismatch = errors.New("booking belongs to another group")

	// ErrNotBookingOwner is returned when a caller without admin rights
	// tries to delete someone else's booking
	ErrNotBookingOwner = errors.New("only the booking's creator or an admin may delete it")

	// ErrNoGroup is returned when the caller is not assigned to a group
	ErrNoGroup = errors.New("user is not assigned to a group")

	// ErrInvalidRange is returned when a list range is inverted
	ErrInvalidRange = errors.New("range end must be after range start")
)
