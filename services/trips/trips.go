package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations.
// ApplyStart and ApplyEnd persist a whole lifecycle transition in a single
// transaction so a crash cannot leave half of a hand-off behind.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/trips TripRepo
type TripRepo interface {
	GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error)
	// GetLastEndKm returns the highest recorded closing odometer value,
	// or -1 when no trip has been recorded yet.
	GetLastEndKm(ctx context.Context) (int, error)
	ApplyStart(ctx context.Context, result *models.TripStartResult) error
	ApplyEnd(ctx context.Context, activeTripID uuid.UUID, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ClaimTrip(ctx context.Context, id, driverID uuid.UUID) error
	ListTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

// TripUC defines the interface for the trip lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/trips TripUC
type TripUC interface {
	StartTrip(ctx context.Context, session *models.Session, req models.TripStartRequest) (*models.TripStartResult, error)
	EndTrip(ctx context.Context, session *models.Session, req models.TripEndRequest) (*models.Trip, error)
	ClaimTrip(ctx context.Context, session *models.Session, tripID uuid.UUID) (*models.Trip, error)
	GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error)
	ListTrips(ctx context.Context, session *models.Session) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, session *models.Session, tripID uuid.UUID, req models.TripUpdateRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, session *models.Session, tripID uuid.UUID) error
}

// TripGW defines the interface for trip event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fahrtenbuch/backend/services/trips TripGW,RateProvider,ActiveTripCache
type TripGW interface {
	PublishTripCompleted(ctx context.Context, trip *models.Trip) error
	PublishTripClaimed(ctx context.Context, trip *models.Trip) error
}

// RateProvider supplies the current per-kilometer rate. Implemented by the
// settings service; the rate is read once per trip creation and the stored
// cost is never recomputed afterwards.
type RateProvider interface {
	RatePerKm(ctx context.Context) (float64, error)
}

// ActiveTripCache mirrors the open active trip in redis for cheap polling
// by clients. Best effort: postgres stays the source of truth.
type ActiveTripCache interface {
	SetActiveTrip(ctx context.Context, trip *models.ActiveTrip) error
	GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error)
	ClearActiveTrip(ctx context.Context) error
}
