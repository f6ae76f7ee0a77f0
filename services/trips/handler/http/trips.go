package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trip HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{tripUC: tripUC}
}

// StartTrip handles the start trip request
func (h *TripsHandler) StartTrip(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.TripStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.StartKm < 0 {
		return utils.BadRequestResponse(c, "Start value must not be negative")
	}

	result, err := h.tripUC.StartTrip(c.Request().Context(), session, req)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to start trip")
	}

	logger.Info("Trip started",
		logger.String("driver_id", session.UserID.String()),
		logger.Int("start_km", req.StartKm),
		logger.Bool("closed_stale_trip", result.ClosedTrip != nil),
		logger.Bool("backfilled_gap", result.GapTrip != nil))

	return utils.SuccessResponse(c, http.StatusCreated, "Trip started successfully", result)
}

// EndTrip handles the end trip request
func (h *TripsHandler) EndTrip(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.TripEndRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.EndTrip(c.Request().Context(), session, req)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to end trip")
	}

	logger.Info("Trip ended",
		logger.String("trip_id", trip.ID.String()),
		logger.Int("end_km", trip.EndKm),
		logger.Float64("cost", trip.Cost))

	return utils.SuccessResponse(c, http.StatusCreated, "Trip ended successfully", trip)
}

// GetActiveTrip returns the currently open trip, if any
func (h *TripsHandler) GetActiveTrip(c echo.Context) error {
	active, err := h.tripUC.GetActiveTrip(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load active trip")
	}
	if active == nil {
		return utils.NotFoundResponse(c, "No active trip in progress")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", active)
}

// ClaimTrip attributes an unclaimed trip to the caller
func (h *TripsHandler) ClaimTrip(c echo.Context) error {
	session := middleware.GetSession(c)

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.ClaimTrip(c.Request().Context(), session, tripID)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to claim trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip claimed successfully", trip)
}

// ListTrips returns the trips of the caller's group
func (h *TripsHandler) ListTrips(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.tripUC.ListTrips(c.Request().Context(), session)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to list trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// UpdateTrip edits a recorded trip
func (h *TripsHandler) UpdateTrip(c echo.Context) error {
	session := middleware.GetSession(c)

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), session, tripID, req)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to update trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip removes a recorded trip
func (h *TripsHandler) DeleteTrip(c echo.Context) error {
	session := middleware.GetSession(c)

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), session, tripID); err != nil {
		return tripErrorResponse(c, err, "Failed to delete trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

// tripErrorResponse maps domain errors to HTTP responses
func tripErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, trips.ErrOdometerBehind),
		errors.Is(err, trips.ErrEndBeforeStart),
		errors.Is(err, trips.ErrNoGroup),
		errors.Is(err, trips.ErrTripClaimed),
		errors.Is(err, trips.ErrNoActiveTrip):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, trips.ErrNotTripOwner), errors.Is(err, trips.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, trips.ErrTripNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
