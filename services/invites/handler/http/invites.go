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
	"github.com/fahrtenbuch/backend/services/invites"
)

// InvitesHandler handles HTTP requests for invitation codes
type InvitesHandler struct {
	inviteUC invites.InviteUC
}

// NewInvitesHandler creates a new invitation code HTTP handler
func NewInvitesHandler(inviteUC invites.InviteUC) *InvitesHandler {
	return &InvitesHandler{inviteUC: inviteUC}
}

// CreateCode issues a new invitation code
func (h *InvitesHandler) CreateCode(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.InviteCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	code, err := h.inviteUC.CreateCode(c.Request().Context(), session, req)
	if err != nil {
		return inviteErrorResponse(c, err, "Failed to create invitation code")
	}

	logger.Info("Invitation code created",
		logger.String("code_id", code.ID.String()),
		logger.String("group_id", code.GroupID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Invitation code created successfully", code)
}

// ListCodes returns the caller's group codes
func (h *InvitesHandler) ListCodes(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.inviteUC.ListCodes(c.Request().Context(), session)
	if err != nil {
		return inviteErrorResponse(c, err, "Failed to list invitation codes")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// DeactivateCode retires an invitation code
func (h *InvitesHandler) DeactivateCode(c echo.Context) error {
	session := middleware.GetSession(c)

	codeID, err := uuid.Parse(c.Param("codeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid code ID")
	}

	if err := h.inviteUC.DeactivateCode(c.Request().Context(), session, codeID); err != nil {
		return inviteErrorResponse(c, err, "Failed to deactivate invitation code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invitation code deactivated successfully", nil)
}

// ValidateCode checks a code without consuming it. Unauthenticated: the
// registration form calls this before an account exists.
func (h *InvitesHandler) ValidateCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "Invitation code is required")
	}

	groupID, err := h.inviteUC.Validate(c.Request().Context(), code)
	if err != nil {
		return inviteErrorResponse(c, err, "Failed to validate invitation code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]string{
		"group_id": groupID.String(),
	})
}

// inviteErrorResponse maps domain errors to HTTP responses
func inviteErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, invites.ErrCodeInactive),
		errors.Is(err, invites.ErrCodeExpired),
		errors.Is(err, invites.ErrCodeExhausted),
		errors.Is(err, invites.ErrMaxUsesNotPositive):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, invites.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, invites.ErrCodeNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
