package settings

import (
	"context"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// SettingsRepo defines the interface for setting data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/settings SettingsRepo,RateCache
type SettingsRepo interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	UpsertSetting(ctx context.Context, setting *models.Setting) error
}

// RateCache caches the parsed per-km rate with a short TTL so every trip
// creation does not hit postgres.
type RateCache interface {
	GetRate(ctx context.Context) (float64, bool, error)
	SetRate(ctx context.Context, rate float64) error
	ClearRate(ctx context.Context) error
}

// SettingsUC defines the interface for the settings business logic. It also
// implements trips.RateProvider through RatePerKm.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/settings SettingsUC
type SettingsUC interface {
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	ListSettings(ctx context.Context) ([]*models.Setting, error)
	UpdateSetting(ctx context.Context, session *models.Session, key string, req models.SettingRequest) (*models.Setting, error)
	RatePerKm(ctx context.Context) (float64, error)
}
