package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/settings"
)

// SettingsHandler handles HTTP requests for settings and the version endpoint
type SettingsHandler struct {
	settingsUC settings.SettingsUC
	cfg        *models.Config
}

// NewSettingsHandler creates a new settings HTTP handler
func NewSettingsHandler(settingsUC settings.SettingsUC, cfg *models.Config) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC, cfg: cfg}
}

// ListSettings returns all settings
func (h *SettingsHandler) ListSettings(c echo.Context) error {
	list, err := h.settingsUC.ListSettings(c.Request().Context())
	if err != nil {
		return settingErrorResponse(c, err, "Failed to list settings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetSetting returns a single setting by key
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")

	setting, err := h.settingsUC.GetSetting(c.Request().Context(), key)
	if err != nil {
		return settingErrorResponse(c, err, "Failed to load setting")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", setting)
}

// UpdateSetting writes a new value
func (h *SettingsHandler) UpdateSetting(c echo.Context) error {
	session := middleware.GetSession(c)
	key := c.Param("key")

	var req models.SettingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	setting, err := h.settingsUC.UpdateSetting(c.Request().Context(), session, key, req)
	if err != nil {
		return settingErrorResponse(c, err, "Failed to update setting")
	}

	logger.Info("Setting updated",
		logger.String("key", key),
		logger.String("updated_by", session.UserID.String()))

	return utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", setting)
}

// GetVersion reports the deployed build. Public, no auth.
func (h *SettingsHandler) GetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, models.VersionInfo{
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		ServerTime:  time.Now().UTC(),
	})
}

// settingErrorResponse maps domain errors to HTTP responses
func settingErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, settings.ErrEmptyValue), errors.Is(err, settings.ErrInvalidRate):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, settings.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, settings.ErrSettingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
