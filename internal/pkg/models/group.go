package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is the cost-and-membership pooling unit. Bookings, trips and
// account balances are scoped to it.
type Group struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GroupRequest creates or renames a group
type GroupRequest struct {
	Name string `json:"name"`
}
