package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/trips"
)

// TripRepo implements trips.TripRepo on PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetActiveTrip retrieves the currently open active trip, if any. The open
// trip is globally exclusive, so no filter is applied.
func (r *TripRepo) GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error) {
	query := `
		SELECT id, driver_id, group_id, start_km, started_at
		FROM active_trips
		ORDER BY started_at DESC
		LIMIT 1
	`

	active := &models.ActiveTrip{}
	err := r.db.GetContext(ctx, active, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No active trip
		}
		return nil, err
	}

	return active, nil
}

// GetLastEndKm returns the highest recorded closing odometer value, or -1
// when no trip exists yet.
func (r *TripRepo) GetLastEndKm(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(end_km), -1) FROM trips`

	var lastEnd int
	if err := r.db.GetContext(ctx, &lastEnd, query); err != nil {
		return 0, err
	}

	return lastEnd, nil
}

// ApplyStart persists a start transition in one transaction: the closing
// or gap trip (when present), removal of any stale active-trip row, and
// the new active trip.
func (r *TripRepo) ApplyStart(ctx context.Context, result *models.TripStartResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if result.ClosedTrip != nil {
		if err := insertTrip(ctx, tx, result.ClosedTrip); err != nil {
			return fmt.Errorf("failed to insert closing trip: %w", err)
		}
	}
	if result.GapTrip != nil {
		if err := insertTrip(ctx, tx, result.GapTrip); err != nil {
			return fmt.Errorf("failed to insert gap trip: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM active_trips`); err != nil {
		return fmt.Errorf("failed to delete stale active trip: %w", err)
	}

	active := result.ActiveTrip
	_, err = tx.ExecContext(ctx, `
		INSERT INTO active_trips (id, driver_id, group_id, start_km, started_at)
		VALUES ($1, $2, $3, $4, $5)
	`, active.ID, active.DriverID, active.GroupID, active.StartKm, active.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to insert active trip: %w", err)
	}

	return tx.Commit()
}

// ApplyEnd persists an end transition in one transaction: the completed
// trip plus removal of the active-trip row it closes.
func (r *TripRepo) ApplyEnd(ctx context.Context, activeTripID uuid.UUID, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTrip(ctx, tx, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM active_trips WHERE id = $1`, activeTripID)
	if err != nil {
		return fmt.Errorf("failed to delete active trip: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		// The active trip was superseded while this end was in flight.
		return trips.ErrNoActiveTrip
	}

	return tx.Commit()
}

func insertTrip(ctx context.Context, tx *sqlx.Tx, trip *models.Trip) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO trips (id, group_id, driver_id, start_km, end_km, date, comment, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, trip.ID, trip.GroupID, trip.DriverID, trip.StartKm, trip.EndKm, trip.Date, trip.Comment, trip.Cost)
	return err
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, group_id, driver_id, start_km, end_km, date, comment, cost, created_at
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, err
	}

	return trip, nil
}

// ClaimTrip attributes an unclaimed trip to a driver and clears the
// hand-off comment. The driver_id IS NULL guard keeps two concurrent
// claims from both succeeding.
func (r *TripRepo) ClaimTrip(ctx context.Context, id, driverID uuid.UUID) error {
	query := `
		UPDATE trips
		SET driver_id = $1, comment = ''
		WHERE id = $2 AND driver_id IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, driverID, id)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrTripClaimed
	}

	return nil
}

// ListTrips retrieves the trips of a group, newest first
func (r *TripRepo) ListTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT id, group_id, driver_id, start_km, end_km, date, comment, cost, created_at
		FROM trips
		WHERE group_id = $1
		ORDER BY date DESC, end_km DESC
	`

	list := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &list, query, groupID); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateTrip updates a trip's odometer values, date and comment
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips
		SET start_km = $1, end_km = $2, date = $3, comment = $4
		WHERE id = $5
	`

	res, err := r.db.ExecContext(ctx, query, trip.StartKm, trip.EndKm, trip.Date, trip.Comment, trip.ID)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrTripNotFound
	}

	return nil
}

// DeleteTrip removes a trip
func (r *TripRepo) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return trips.ErrTripNotFound
	}

	return nil
}
