package gateway

import (
	"context"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
)

// TripGW publishes trip lifecycle events to NATS
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway
func NewTripGW(natsClient *natspkg.Client) *TripGW {
	return &TripGW{natsClient: natsClient}
}

// PublishTripCompleted publishes a trip completed event
func (g *TripGW) PublishTripCompleted(ctx context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripCompleted, trip)
}

// PublishTripClaimed publishes a trip claimed event
func (g *TripGW) PublishTripClaimed(ctx context.Context, trip *models.Trip) error {
	return g.natsClient.PublishJSON(constants.SubjectTripClaimed, trip)
}
