package trips

import "errors"

var (
	// ErrOdometerBehind is returned when a start value lies below the last
	// recorded closing odometer value.
	ErrOdometerBehind = errors.New("start value is below the last recorded odometer value")

	// ErrEndBeforeStart is returned when a trip would close at or below its
	// start value.
	ErrEndBeforeStart = errors.New("end value must be greater than the start value")

	// ErrNoActiveTrip is returned when ending a trip without one open.
	ErrNoActiveTrip = errors.New("no active trip in progress")

	// ErrNotTripOwner is returned when ending an active trip owned by a
	// different driver.
	ErrNotTripOwner = errors.New("active trip belongs to a different driver")

	// ErrTripNotFound is returned when the trip does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrTripClaimed is returned when claiming a trip that already has a driver.
	ErrTripClaimed = errors.New("trip is already claimed")

	// ErrForbidden is returned when the session may not modify the trip.
	ErrForbidden = errors.New("not allowed to modify this trip")

	// ErrNoGroup is returned when the acting user belongs to no group.
	ErrNoGroup = errors.New("user is not assigned to a group")
)
