package gateway

import (
	"context"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
)

// UserGW implements the users.UserGW interface
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(natsClient *natspkg.Client) *UserGW {
	return &UserGW{natsClient: natsClient}
}

// registeredEvent omits credentials from the published payload
type registeredEvent struct {
	UserID  string  `json:"user_id"`
	Email   string  `json:"email"`
	GroupID *string `json:"group_id,omitempty"`
}

// PublishUserRegistered announces a completed registration
func (g *UserGW) PublishUserRegistered(_ context.Context, user *models.User) error {
	event := registeredEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
	}
	if user.GroupID != nil {
		groupID := user.GroupID.String()
		event.GroupID = &groupID
	}

	return g.natsClient.PublishJSON(constants.SubjectUserRegistered, event)
}
