package models

import (
	"time"

	"github.com/google/uuid"
)

// Role labels carried in JWT claims
const (
	RoleAdmin      = "admin"
	RoleGroupAdmin = "group_admin"
	RoleMember     = "member"
)

// User is an authenticated driver profile. The profile is created together
// with the credentials at registration and mirrors the auth identity 1:1.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	GroupID      *uuid.UUID `json:"group_id,omitempty" db:"group_id"`
	IsAdmin      bool       `json:"is_admin" db:"is_admin"`
	IsGroupAdmin bool       `json:"is_group_admin" db:"is_group_admin"`
	Blocked      bool       `json:"blocked" db:"blocked"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Role returns the role label used in token claims.
func (u *User) Role() string {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsGroupAdmin:
		return RoleGroupAdmin
	default:
		return RoleMember
	}
}

// DisplayName returns the user's full name for account statements and logs.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Capabilities is the action set a session is allowed to perform. It is
// derived once per request from the token claims and handed to handlers
// instead of scattering role checks.
type Capabilities struct {
	ManageUsers        bool `json:"manage_users"`
	ManageGroup        bool `json:"manage_group"`
	ManageInvites      bool `json:"manage_invites"`
	EditSettings       bool `json:"edit_settings"`
	ManageReceiptTypes bool `json:"manage_receipt_types"`
	DeleteAnyReceipt   bool `json:"delete_any_receipt"`
	EditAnyBooking     bool `json:"edit_any_booking"`
	EditAnyTrip        bool `json:"edit_any_trip"`
}

// CapabilitiesForRole maps a role label to its capability set.
func CapabilitiesForRole(role string) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{
			ManageUsers:        true,
			ManageGroup:        true,
			ManageInvites:      true,
			EditSettings:       true,
			ManageReceiptTypes: true,
			DeleteAnyReceipt:   true,
			EditAnyBooking:     true,
			EditAnyTrip:        true,
		}
	case RoleGroupAdmin:
		return Capabilities{
			ManageGroup:   true,
			ManageInvites: true,
		}
	default:
		return Capabilities{}
	}
}

// Session identifies the acting user within a request.
type Session struct {
	UserID       uuid.UUID
	GroupID      *uuid.UUID
	Role         string
	Capabilities Capabilities
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// SameGroup reports whether the session belongs to the given group.
func (s *Session) SameGroup(groupID uuid.UUID) bool {
	return s.GroupID != nil && *s.GroupID == groupID
}

// RegisterRequest is the payload for invitation-gated sign up
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	InviteCode string `json:"invite_code"`
}

// LoginRequest is the payload for email/password sign in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the signed-in user
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// UpdatePasswordRequest changes the password of the signed-in user
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateProfileRequest edits the signed-in user's own profile
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AdminUserUpdate is the admin payload for managing a profile
type AdminUserUpdate struct {
	GroupID      *uuid.UUID `json:"group_id"`
	IsAdmin      *bool      `json:"is_admin"`
	IsGroupAdmin *bool      `json:"is_group_admin"`
	Blocked      *bool      `json:"blocked"`
}
