package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/bookings"
)

// BookingRepo implements the bookings.BookingRepo interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new reservation window
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, start_at, end_at, group_id, driver_id, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.StartAt,
		booking.EndAt,
		booking.GroupID,
		booking.DriverID,
		booking.Comment,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// GetBooking fetches a single booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	query := `
		SELECT id, start_at, end_at, group_id, driver_id, comment, created_at
		FROM bookings
		WHERE id = $1`

	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// ListBookings returns all bookings of a group ordered by start time
func (r *BookingRepo) ListBookings(ctx context.Context, groupID uuid.UUID) ([]*models.Booking, error) {
	list := []*models.Booking{}
	query := `
		SELECT id, start_at, end_at, group_id, driver_id, comment, created_at
		FROM bookings
		WHERE group_id = $1
		ORDER BY start_at ASC`

	if err := r.db.SelectContext(ctx, &list, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return list, nil
}

// ListBookingsInRange returns the group's bookings overlapping [from, to)
func (r *BookingRepo) ListBookingsInRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*models.Booking, error) {
	list := []*models.Booking{}
	query := `
		SELECT id, start_at, end_at, group_id, driver_id, comment, created_at
		FROM bookings
		WHERE group_id = $1 AND end_at > $2 AND start_at < $3
		ORDER BY start_at ASC`

	if err := r.db.SelectContext(ctx, &list, query, groupID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list bookings in range: %w", err)
	}

	return list, nil
}

// UpdateBooking rewrites the window and comment of an existing booking
func (r *BookingRepo) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET start_at = $1, end_at = $2, comment = $3
		WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query,
		booking.StartAt,
		booking.EndAt,
		booking.Comment,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return bookings.ErrBookingNotFound
	}

	return nil
}

// DeleteBooking removes a booking
func (r *BookingRepo) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return bookings.ErrBookingNotFound
	}

	return nil
}
