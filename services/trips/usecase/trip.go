package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg   *models.Config
	repo  trips.TripRepo
	gw    trips.TripGW
	rates trips.RateProvider
	cache trips.ActiveTripCache
	now   func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	repo trips.TripRepo,
	gw trips.TripGW,
	rates trips.RateProvider,
	cache trips.ActiveTripCache,
) trips.TripUC {
	return &tripUC{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		rates: rates,
		cache: cache,
		now:   time.Now,
	}
}

// StartTrip opens a new active trip at the requested odometer value. A
// stale active trip left by another driver is closed as an unclaimed trip;
// the same driver re-starting closes their own open trip under their name;
// a start value above the last recorded end without an open trip produces
// one backfilled unclaimed gap trip. All resulting writes are applied in a
// single transaction by the repository.
func (uc *tripUC) StartTrip(ctx context.Context, session *models.Session, req models.TripStartRequest) (*models.TripStartResult, error) {
	if session.GroupID == nil {
		return nil, trips.ErrNoGroup
	}
	groupID := *session.GroupID
	driverID := session.UserID

	active, err := uc.repo.GetActiveTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active trip: %w", err)
	}

	lastEnd, err := uc.repo.GetLastEndKm(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up last odometer value: %w", err)
	}
	if lastEnd >= 0 && req.StartKm < lastEnd {
		return nil, trips.ErrOdometerBehind
	}

	rate, err := uc.rates.RatePerKm(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate per km: %w", err)
	}

	now := uc.now()
	result := &models.TripStartResult{}

	switch {
	case active != nil:
		// An open trip exists. Starting a new one implicitly closes it:
		// attributed to the driver if they re-started themselves, unclaimed
		// with a hand-off note otherwise.
		if req.StartKm < active.StartKm {
			return nil, trips.ErrOdometerBehind
		}

		closed := &models.Trip{
			ID:      uuid.New(),
			GroupID: active.GroupID,
			StartKm: active.StartKm,
			EndKm:   req.StartKm,
			Date:    now,
			Cost:    float64(req.StartKm-active.StartKm) * rate,
		}
		if active.DriverID == driverID {
			owner := active.DriverID
			closed.DriverID = &owner
		} else {
			closed.Comment = "Started by another driver and not finished"
		}
		result.ClosedTrip = closed

	case lastEnd >= 0 && req.StartKm > lastEnd:
		// Nobody accounted for the kilometers between the last recorded end
		// and the new start value: backfill them as one unclaimed trip.
		result.GapTrip = &models.Trip{
			ID:      uuid.New(),
			GroupID: groupID,
			StartKm: lastEnd,
			EndKm:   req.StartKm,
			Date:    now,
			Comment: "Backfilled odometer gap",
			Cost:    float64(req.StartKm-lastEnd) * rate,
		}
	}

	result.ActiveTrip = &models.ActiveTrip{
		ID:        uuid.New(),
		DriverID:  driverID,
		GroupID:   groupID,
		StartKm:   req.StartKm,
		StartedAt: now,
	}

	if err := uc.repo.ApplyStart(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to start trip: %w", err)
	}

	if err := uc.cache.SetActiveTrip(ctx, result.ActiveTrip); err != nil {
		logger.Warn("Failed to cache active trip", logger.Err(err))
	}

	return result, nil
}

// EndTrip closes the caller's own active trip at the given odometer value.
// The cost is fixed here, at creation time, from the current rate.
func (uc *tripUC) EndTrip(ctx context.Context, session *models.Session, req models.TripEndRequest) (*models.Trip, error) {
	active, err := uc.repo.GetActiveTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active trip: %w", err)
	}
	if active == nil {
		return nil, trips.ErrNoActiveTrip
	}
	if active.DriverID != session.UserID {
		return nil, trips.ErrNotTripOwner
	}
	if req.EndKm <= active.StartKm {
		return nil, trips.ErrEndBeforeStart
	}

	rate, err := uc.rates.RatePerKm(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate per km: %w", err)
	}

	driverID := active.DriverID
	trip := &models.Trip{
		ID:       uuid.New(),
		GroupID:  active.GroupID,
		DriverID: &driverID,
		StartKm:  active.StartKm,
		EndKm:    req.EndKm,
		Date:     uc.now(),
		Comment:  req.Comment,
		Cost:     float64(req.EndKm-active.StartKm) * rate,
	}

	if err := uc.repo.ApplyEnd(ctx, active.ID, trip); err != nil {
		return nil, fmt.Errorf("failed to end trip: %w", err)
	}

	if err := uc.cache.ClearActiveTrip(ctx); err != nil {
		logger.Warn("Failed to clear cached active trip", logger.Err(err))
	}
	if err := uc.gw.PublishTripCompleted(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip completed event", logger.Err(err))
	}

	return trip, nil
}

// ClaimTrip attributes an unclaimed trip to the acting driver and clears
// the cautionary comment.
func (uc *tripUC) ClaimTrip(ctx context.Context, session *models.Session, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Unclaimed() {
		return nil, trips.ErrTripClaimed
	}

	if err := uc.repo.ClaimTrip(ctx, tripID, session.UserID); err != nil {
		return nil, fmt.Errorf("failed to claim trip: %w", err)
	}

	driverID := session.UserID
	trip.DriverID = &driverID
	trip.Comment = ""

	if err := uc.gw.PublishTripClaimed(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip claimed event", logger.Err(err))
	}

	return trip, nil
}

// GetActiveTrip returns the currently open trip, if any. The redis mirror
// is consulted first and reconciled from postgres on miss.
func (uc *tripUC) GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error) {
	if cached, err := uc.cache.GetActiveTrip(ctx); err == nil && cached != nil {
		return cached, nil
	}

	active, err := uc.repo.GetActiveTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up active trip: %w", err)
	}

	if active != nil {
		if err := uc.cache.SetActiveTrip(ctx, active); err != nil {
			logger.Warn("Failed to cache active trip", logger.Err(err))
		}
	}

	return active, nil
}

// ListTrips returns the trips of the caller's group, newest first.
func (uc *tripUC) ListTrips(ctx context.Context, session *models.Session) ([]*models.Trip, error) {
	if session.GroupID == nil {
		return nil, trips.ErrNoGroup
	}
	return uc.repo.ListTrips(ctx, *session.GroupID)
}

// UpdateTrip edits a recorded trip. Only the trip's driver or an admin may
// edit; the odometer invariant is enforced on update as well.
func (uc *tripUC) UpdateTrip(ctx context.Context, session *models.Session, tripID uuid.UUID, req models.TripUpdateRequest) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !uc.mayModify(session, trip) {
		return nil, trips.ErrForbidden
	}
	if req.EndKm <= req.StartKm {
		return nil, trips.ErrEndBeforeStart
	}

	trip.StartKm = req.StartKm
	trip.EndKm = req.EndKm
	trip.Date = req.Date
	trip.Comment = req.Comment

	if err := uc.repo.UpdateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// DeleteTrip removes a recorded trip. Only the trip's driver or an admin.
func (uc *tripUC) DeleteTrip(ctx context.Context, session *models.Session, tripID uuid.UUID) error {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !uc.mayModify(session, trip) {
		return trips.ErrForbidden
	}

	return uc.repo.DeleteTrip(ctx, tripID)
}

func (uc *tripUC) mayModify(session *models.Session, trip *models.Trip) bool {
	if session.Capabilities.EditAnyTrip {
		return true
	}
	return trip.DriverID != nil && *trip.DriverID == session.UserID
}
