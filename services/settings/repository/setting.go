package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/settings"
)

// SettingsRepo implements the settings.SettingsRepo interface
type SettingsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(cfg *models.Config, db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetSetting fetches a setting by key
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	query := `SELECT key, value, updated_by, updated_at FROM settings WHERE key = $1`

	err := r.db.GetContext(ctx, &setting, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return &setting, nil
}

// ListSettings returns all settings
func (r *SettingsRepo) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	list := []*models.Setting{}
	query := `SELECT key, value, updated_by, updated_at FROM settings ORDER BY key ASC`

	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return list, nil
}

// UpsertSetting writes a setting, inserting or overwriting the key
func (r *SettingsRepo) UpsertSetting(ctx context.Context, setting *models.Setting) error {
	query := `
		INSERT INTO settings (key, value, updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, setting.Key, setting.Value, setting.UpdatedBy, setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}
