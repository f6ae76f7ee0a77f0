package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a reservation window for future vehicle usage. Editable only
// within the owning group; no overlap detection is performed.
type Booking struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StartAt   time.Time `json:"start_at" db:"start_at"`
	EndAt     time.Time `json:"end_at" db:"end_at"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BookingRequest creates or updates a reservation window
type BookingRequest struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Comment string    `json:"comment"`
}
