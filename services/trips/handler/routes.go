package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/trips"
	httpHandler "github.com/fahrtenbuch/backend/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	tripsGroup := e.Group("/trips", authMiddleware)

	tripsGroup.GET("", h.tripsHTTP.ListTrips)
	tripsGroup.POST("/start", h.tripsHTTP.StartTrip)
	tripsGroup.POST("/end", h.tripsHTTP.EndTrip)
	tripsGroup.GET("/active", h.tripsHTTP.GetActiveTrip)
	tripsGroup.POST("/:tripID/claim", h.tripsHTTP.ClaimTrip)
	tripsGroup.PUT("/:tripID", h.tripsHTTP.UpdateTrip)
	tripsGroup.DELETE("/:tripID", h.tripsHTTP.DeleteTrip)
}
