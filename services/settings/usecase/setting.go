package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/settings"
)

// settingsUC implements the settings.SettingsUC interface
type settingsUC struct {
	cfg   *models.Config
	repo  settings.SettingsRepo
	cache settings.RateCache
	now   func() time.Time
}

// NewSettingsUC creates a new settings use case
func NewSettingsUC(cfg *models.Config, repo settings.SettingsRepo, cache settings.RateCache) settings.SettingsUC {
	return &settingsUC{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// GetSetting returns a single setting by key.
func (uc *settingsUC) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	return uc.repo.GetSetting(ctx, key)
}

// ListSettings returns all settings.
func (uc *settingsUC) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return uc.repo.ListSettings(ctx)
}

// UpdateSetting writes a new value and records who changed it. Updating
// cost_per_km validates the number and drops the cached rate; recorded trip
// costs stay as they are.
func (uc *settingsUC) UpdateSetting(ctx context.Context, session *models.Session, key string, req models.SettingRequest) (*models.Setting, error) {
	if !session.Capabilities.EditSettings {
		return nil, settings.ErrForbidden
	}
	if req.Value == "" {
		return nil, settings.ErrEmptyValue
	}

	if key == models.SettingCostPerKm {
		rate, err := strconv.ParseFloat(req.Value, 64)
		if err != nil || rate <= 0 {
			return nil, settings.ErrInvalidRate
		}
	}

	updatedBy := session.UserID
	setting := &models.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedBy: &updatedBy,
		UpdatedAt: uc.now(),
	}

	if err := uc.repo.UpsertSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	if key == models.SettingCostPerKm {
		if err := uc.cache.ClearRate(ctx); err != nil {
			logger.Warn("Failed to clear cached rate", logger.Err(err))
		}
	}

	return setting, nil
}

// RatePerKm returns the current per-km rate: cache first, then the
// cost_per_km setting, then the configured fallback when the setting is
// absent or unparsable.
func (uc *settingsUC) RatePerKm(ctx context.Context) (float64, error) {
	if rate, ok, err := uc.cache.GetRate(ctx); err == nil && ok {
		return rate, nil
	}

	setting, err := uc.repo.GetSetting(ctx, models.SettingCostPerKm)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return uc.cfg.Billing.FallbackRatePerKm, nil
		}
		return 0, fmt.Errorf("failed to read cost per km setting: %w", err)
	}

	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate <= 0 {
		logger.Warn("Invalid cost_per_km setting, using fallback",
			logger.String("value", setting.Value))
		return uc.cfg.Billing.FallbackRatePerKm, nil
	}

	if err := uc.cache.SetRate(ctx, rate); err != nil {
		logger.Warn("Failed to cache rate", logger.Err(err))
	}

	return rate, nil
}
