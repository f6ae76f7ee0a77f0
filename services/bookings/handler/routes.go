package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/bookings"
	httpHandler "github.com/fahrtenbuch/backend/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingsHTTP *httpHandler.BookingsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		bookingsHTTP: httpHandler.NewBookingsHandler(bookingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	bookingsGroup := e.Group("/bookings", authMiddleware)

	bookingsGroup.GET("", h.bookingsHTTP.ListBookings)
	bookingsGroup.POST("", h.bookingsHTTP.CreateBooking)
	bookingsGroup.GET("/:bookingID", h.bookingsHTTP.GetBooking)
	bookingsGroup.PUT("/:bookingID", h.bookingsHTTP.UpdateBooking)
	bookingsGroup.DELETE("/:bookingID", h.bookingsHTTP.DeleteBooking)
}
