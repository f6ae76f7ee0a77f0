package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/settings"
	httpHandler "github.com/fahrtenbuch/backend/services/settings/handler/http"
)

// Handler combines all handlers for the settings service
type Handler struct {
	settingsHTTP *httpHandler.SettingsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(settingsUC settings.SettingsUC, cfg *models.Config) *Handler {
	return &Handler{
		settingsHTTP: httpHandler.NewSettingsHandler(settingsUC, cfg),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. /version stays public so
// clients can check compatibility before logging in.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/version", h.settingsHTTP.GetVersion)

	settingsGroup := e.Group("/settings", authMiddleware)
	settingsGroup.GET("", h.settingsHTTP.ListSettings)
	settingsGroup.GET("/:key", h.settingsHTTP.GetSetting)
	settingsGroup.PUT("/:key", h.settingsHTTP.UpdateSetting)
}
