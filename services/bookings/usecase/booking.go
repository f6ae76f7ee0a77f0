package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg  *models.Config
	repo bookings.BookingRepo
	now  func() time.Time
}

// NewBookingUC creates a new booking use case
func NewBookingUC(cfg *models.Config, repo bookings.BookingRepo) bookings.BookingUC {
	return &bookingUC{
		cfg:  cfg,
		repo: repo,
		now:  time.Now,
	}
}

// CreateBooking records a reservation window for the caller's group.
// Overlapping windows are allowed; the calendar view surfaces conflicts.
func (uc *bookingUC) CreateBooking(ctx context.Context, session *models.Session, req models.BookingRequest) (*models.Booking, error) {
	if session.GroupID == nil {
		return nil, bookings.ErrNoGroup
	}
	if err := validateWindow(req); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:        uuid.New(),
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		GroupID:   *session.GroupID,
		DriverID:  session.UserID,
		Comment:   req.Comment,
		CreatedAt: uc.now(),
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBooking returns a single booking, visible only within its group.
func (uc *bookingUC) GetBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !uc.sameGroup(session, booking) {
		return nil, bookings.ErrGroupMismatch
	}
	return booking, nil
}

// ListBookings returns all bookings of the caller's group, soonest first.
func (uc *bookingUC) ListBookings(ctx context.Context, session *models.Session) ([]*models.Booking, error) {
	if session.GroupID == nil {
		return nil, bookings.ErrNoGroup
	}
	return uc.repo.ListBookings(ctx, *session.GroupID)
}

// ListUpcoming returns the group's bookings overlapping [from, to).
func (uc *bookingUC) ListUpcoming(ctx context.Context, session *models.Session, from, to time.Time) ([]*models.Booking, error) {
	if session.GroupID == nil {
		return nil, bookings.ErrNoGroup
	}
	if !to.After(from) {
		return nil, bookings.ErrInvalidRange
	}
	return uc.repo.ListBookingsInRange(ctx, *session.GroupID, from, to)
}

// UpdateBooking edits a reservation window. The group check runs before any
// validation or write: a caller from another group never gets that far.
func (uc *bookingUC) UpdateBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID, req models.BookingRequest) (*models.Booking, error) {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !uc.sameGroup(session, booking) {
		return nil, bookings.ErrGroupMismatch
	}
	if err := validateWindow(req); err != nil {
		return nil, err
	}

	booking.StartAt = req.StartAt
	booking.EndAt = req.EndAt
	booking.Comment = req.Comment

	if err := uc.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return booking, nil
}

// DeleteBooking removes a reservation. Creator or admin only.
func (uc *bookingUC) DeleteBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID) error {
	booking, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if !uc.sameGroup(session, booking) {
		return bookings.ErrGroupMismatch
	}
	if booking.DriverID != session.UserID && !session.Capabilities.EditAnyBooking {
		return bookings.ErrNotBookingOwner
	}

	return uc.repo.DeleteBooking(ctx, bookingID)
}

func (uc *bookingUC) sameGroup(session *models.Session, booking *models.Booking) bool {
	if session.Capabilities.EditAnyBooking {
		return true
	}
	return session.GroupID != nil && *session.GroupID == booking.GroupID
}

func validateWindow(req models.BookingRequest) error {
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return bookings.ErrEndNotAfterStart
	}
	if !req.EndAt.After(req.StartAt) {
		return bookings.ErrEndNotAfterStart
	}
	return nil
}
