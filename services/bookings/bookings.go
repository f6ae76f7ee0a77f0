package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, groupID uuid.UUID) ([]*models.Booking, error)
	ListBookingsInRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

// BookingUC defines the interface for the booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, session *models.Session, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, session *models.Session) ([]*models.Booking, error)
	ListUpcoming(ctx context.Context, session *models.Session, from, to time.Time) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID, req models.BookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, session *models.Session, bookingID uuid.UUID) error
}
