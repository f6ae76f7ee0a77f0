package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a completed odometer-tracked drive. DriverID is NULL for
// unclaimed trips: gap fillers and hand-off closures nobody accounted for.
// Cost is fixed at creation time and never recomputed when the rate changes.
type Trip struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	GroupID   uuid.UUID  `json:"group_id" db:"group_id"`
	DriverID  *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	StartKm   int        `json:"start_km" db:"start_km"`
	EndKm     int        `json:"end_km" db:"end_km"`
	Date      time.Time  `json:"date" db:"date"`
	Comment   string     `json:"comment,omitempty" db:"comment"`
	Cost      float64    `json:"cost" db:"cost"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Distance returns the driven kilometers.
func (t *Trip) Distance() int {
	return t.EndKm - t.StartKm
}

// Unclaimed reports whether the trip has no attributed driver.
func (t *Trip) Unclaimed() bool {
	return t.DriverID == nil
}

// ActiveTrip marks an open, unfinished trip. At most one exists at a time:
// the vehicle is shared, so the open trip is globally exclusive.
type ActiveTrip struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	StartKm   int       `json:"start_km" db:"start_km"`
	StartedAt time.Time `json:"started_at" db:"started_at"`
}

// TripStartRequest opens a new active trip at the given odometer value
type TripStartRequest struct {
	StartKm int `json:"start_km"`
}

// TripEndRequest closes the caller's active trip
type TripEndRequest struct {
	EndKm   int    `json:"end_km"`
	Comment string `json:"comment"`
}

// TripUpdateRequest edits a recorded trip
type TripUpdateRequest struct {
	StartKm int       `json:"start_km"`
	EndKm   int       `json:"end_km"`
	Date    time.Time `json:"date"`
	Comment string    `json:"comment"`
}

// TripStartResult reports what the start transition did: which trip (if
// any) was closed on hand-off or backfilled, and the new active trip.
type TripStartResult struct {
	ClosedTrip *Trip       `json:"closed_trip,omitempty"`
	GapTrip    *Trip       `json:"gap_trip,omitempty"`
	ActiveTrip *ActiveTrip `json:"active_trip"`
}
