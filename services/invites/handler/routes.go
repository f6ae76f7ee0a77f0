package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/invites"
	httpHandler "github.com/fahrtenbuch/backend/services/invites/handler/http"
)

// Handler combines all handlers for the invites service
type Handler struct {
	invitesHTTP *httpHandler.InvitesHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(inviteUC invites.InviteUC, cfg *models.Config) *Handler {
	return &Handler{
		invitesHTTP: httpHandler.NewInvitesHandler(inviteUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Code validation is public so
// the registration form can check a code before an account exists.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/invites/validate/:code", h.invitesHTTP.ValidateCode)

	invitesGroup := e.Group("/invites", authMiddleware)
	invitesGroup.GET("", h.invitesHTTP.ListCodes)
	invitesGroup.POST("", h.invitesHTTP.CreateCode)
	invitesGroup.POST("/:codeID/deactivate", h.invitesHTTP.DeactivateCode)
}
