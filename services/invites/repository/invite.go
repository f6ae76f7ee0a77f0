package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/invites"
)

// InviteRepo implements the invites.InviteRepo interface
type InviteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewInviteRepo creates a new invitation code repository
func NewInviteRepo(cfg *models.Config, db *sqlx.DB) *InviteRepo {
	return &InviteRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateCode inserts a new invitation code
func (r *InviteRepo) CreateCode(ctx context.Context, code *models.InviteCode) error {
	query := `
		INSERT INTO invite_codes (id, code, group_id, created_by, expires_at, max_uses, uses_count, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		code.ID,
		code.Code,
		code.GroupID,
		code.CreatedBy,
		code.ExpiresAt,
		code.MaxUses,
		code.UsesCount,
		code.Active,
		code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invite code: %w", err)
	}

	return nil
}

// GetCode fetches an invitation code by its code string
func (r *InviteRepo) GetCode(ctx context.Context, code string) (*models.InviteCode, error) {
	var found models.InviteCode
	query := `
		SELECT id, code, group_id, created_by, expires_at, max_uses, uses_count, active, created_at
		FROM invite_codes
		WHERE code = $1`

	err := r.db.GetContext(ctx, &found, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invites.ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to get invite code: %w", err)
	}

	return &found, nil
}

// ListCodes returns the codes issued for a group, newest first
func (r *InviteRepo) ListCodes(ctx context.Context, groupID uuid.UUID) ([]*models.InviteCode, error) {
	list := []*models.InviteCode{}
	query := `
		SELECT id, code, group_id, created_by, expires_at, max_uses, uses_count, active, created_at
		FROM invite_codes
		WHERE group_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &list, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list invite codes: %w", err)
	}

	return list, nil
}

// DeactivateCode retires a code
func (r *InviteRepo) DeactivateCode(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invite_codes SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate invite code: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return invites.ErrCodeNotFound
	}

	return nil
}

// UseCode advances the use counter in one conditional update. The WHERE
// clause is the race guard: once uses_count hits max_uses no concurrent
// registration can match the row again.
func (r *InviteRepo) UseCode(ctx context.Context, code string) (uuid.UUID, error) {
	var groupID uuid.UUID
	query := `
		UPDATE invite_codes
		SET uses_count = uses_count + 1
		WHERE code = $1
		  AND active
		  AND (expires_at IS NULL OR expires_at > NOW())
		  AND uses_count < max_uses
		RETURNING group_id`

	err := r.db.GetContext(ctx, &groupID, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, invites.ErrCodeNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to use invite code: %w", err)
	}

	return groupID, nil
}
