package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/users"
)

// UserRepo implements the users.UserRepo interface
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `id, email, password_hash, first_name, last_name, group_id,
	is_admin, is_group_admin, blocked, created_at, updated_at`

// CreateUser inserts a new profile with its credentials
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, group_id,
			is_admin, is_group_admin, blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.GroupID,
		user.IsAdmin,
		user.IsGroupAdmin,
		user.Blocked,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUser fetches a profile by ID
func (r *UserRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail fetches a profile by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// ListUsers returns all profiles ordered by name
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	list := []*models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY last_name ASC, first_name ASC`

	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return list, nil
}

// UpdateProfile rewrites the user's name
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, updated_at = NOW() WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, firstName, lastName, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// UpdatePassword stores a new password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// AdminUpdateUser rewrites flags, blocked state and group membership
func (r *UserRepo) AdminUpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET group_id = $1, is_admin = $2, is_group_admin = $3, blocked = $4, updated_at = $5
		WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		user.GroupID,
		user.IsAdmin,
		user.IsGroupAdmin,
		user.Blocked,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a profile
func (r *UserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// SetResetToken stores a password reset token with its expiry
func (r *UserRepo) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expires_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, token, expiresAt, id)
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// GetUserByResetToken fetches the profile holding an unexpired reset token
func (r *UserRepo) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users
		WHERE reset_token = $1 AND reset_token_expires_at > NOW()`

	err := r.db.GetContext(ctx, &user, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	return &user, nil
}

// ClearResetToken invalidates the stored reset token
func (r *UserRepo) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}

	return nil
}

// CreateGroup inserts a new group
func (r *UserRepo) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `INSERT INTO groups (id, name, created_at) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, group.ID, group.Name, group.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	return nil
}

// GetGroup fetches a group by ID
func (r *UserRepo) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	query := `SELECT id, name, created_at FROM groups WHERE id = $1`

	err := r.db.GetContext(ctx, &group, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return &group, nil
}

// ListGroups returns all groups ordered by name
func (r *UserRepo) ListGroups(ctx context.Context) ([]*models.Group, error) {
	list := []*models.Group{}
	query := `SELECT id, name, created_at FROM groups ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return list, nil
}

// UpdateGroup renames a group
func (r *UserRepo) UpdateGroup(ctx context.Context, group *models.Group) error {
	res, err := r.db.ExecContext(ctx, `UPDATE groups SET name = $1 WHERE id = $2`, group.Name, group.ID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrGroupNotFound
	}

	return nil
}

// DeleteGroup removes a group
func (r *UserRepo) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return users.ErrGroupNotFound
	}

	return nil
}
