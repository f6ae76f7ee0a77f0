package models

import (
	"time"

	"github.com/google/uuid"
)

// InviteCode gates self-registration into a specific group. A code is
// usable while active, unexpired and below its use limit. The use counter
// is only ever advanced by an atomic conditional update in the repository,
// never by a client-side check-then-set.
type InviteCode struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	GroupID   uuid.UUID  `json:"group_id" db:"group_id"`
	CreatedBy uuid.UUID  `json:"created_by" db:"created_by"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	MaxUses   int        `json:"max_uses" db:"max_uses"`
	UsesCount int        `json:"uses_count" db:"uses_count"`
	Active    bool       `json:"active" db:"active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Exhausted reports whether the code reached its use limit.
func (c *InviteCode) Exhausted() bool {
	return c.UsesCount >= c.MaxUses
}

// Expired reports whether the code's expiry lies in the past.
func (c *InviteCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// InviteCodeRequest creates an invitation code for a group
type InviteCodeRequest struct {
	GroupID   uuid.UUID  `json:"group_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	MaxUses   int        `json:"max_uses"`
}
