package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/bookings"
)

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{bookingUC: bookingUC}
}

// CreateBooking handles the create booking request
func (h *BookingsHandler) CreateBooking(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), session, req)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to create booking")
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("driver_id", session.UserID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking returns a single booking
func (h *BookingsHandler) GetBooking(c echo.Context) error {
	session := middleware.GetSession(c)

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), session, bookingID)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to load booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}

// ListBookings returns the caller's group bookings. With from/to query
// parameters (RFC 3339) only the overlapping windows are returned.
func (h *BookingsHandler) ListBookings(c echo.Context) error {
	session := middleware.GetSession(c)
	ctx := c.Request().Context()

	fromParam := c.QueryParam("from")
	toParam := c.QueryParam("to")

	if fromParam == "" && toParam == "" {
		list, err := h.bookingUC.ListBookings(ctx, session)
		if err != nil {
			return bookingErrorResponse(c, err, "Failed to list bookings")
		}
		return utils.SuccessResponse(c, http.StatusOK, "", list)
	}

	from, err := time.Parse(time.RFC3339, fromParam)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid 'from' timestamp")
	}
	to, err := time.Parse(time.RFC3339, toParam)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid 'to' timestamp")
	}

	list, err := h.bookingUC.ListUpcoming(ctx, session, from, to)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// UpdateBooking edits a reservation window
func (h *BookingsHandler) UpdateBooking(c echo.Context) error {
	session := middleware.GetSession(c)

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.bookingUC.UpdateBooking(c.Request().Context(), session, bookingID, req)
	if err != nil {
		return bookingErrorResponse(c, err, "Failed to update booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", booking)
}

// DeleteBooking removes a reservation
func (h *BookingsHandler) DeleteBooking(c echo.Context) error {
	session := middleware.GetSession(c)

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.bookingUC.DeleteBooking(c.Request().Context(), session, bookingID); err != nil {
		return bookingErrorResponse(c, err, "Failed to delete booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking deleted successfully", nil)
}

// bookingErrorResponse maps domain errors to HTTP responses
func bookingErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, bookings.ErrEndNotAfterStart),
		errors.Is(err, bookings.ErrInvalidRange),
		errors.Is(err, bookings.ErrNoGroup):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, bookings.ErrGroupMismatch), errors.Is(err, bookings.ErrNotBookingOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, bookings.ErrBookingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
