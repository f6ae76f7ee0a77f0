package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrtenbuch/backend/internal/pkg/jwt"
	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/invites"
	"github.com/fahrtenbuch/backend/services/users"
)

const (
	minPasswordLength = 8
	resetTokenLength  = 12
	resetTokenTTL     = 2 * time.Hour
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	repo     users.UserRepo
	inviteUC invites.InviteUC
	gw       users.UserGW
	now      func() time.Time
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo, inviteUC invites.InviteUC, gw users.UserGW) users.UserUC {
	return &userUC{
		cfg:      cfg,
		repo:     repo,
		inviteUC: inviteUC,
		gw:       gw,
		now:      time.Now,
	}
}

// Register creates an account gated by an invitation code. The profile row
// is written first and the code consumed after: if the conditional use
// fails because a racing registration took the last slot, the profile is
// rolled back and the caller sees the code failure.
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, users.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, users.ErrWeakPassword
	}

	groupID, err := uc.inviteUC.Validate(ctx, req.InviteCode)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, users.ErrEmailTaken
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		GroupID:      &groupID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := uc.inviteUC.Use(ctx, req.InviteCode); err != nil {
		// Lost the race for the last use: undo the profile so the code
		// counter and the member list stay consistent.
		if delErr := uc.repo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Error("Failed to roll back user after invite use failure",
				logger.String("user_id", user.ID.String()),
				logger.Err(delErr))
		}
		return nil, err
	}

	if err := uc.gw.PublishUserRegistered(ctx, user); err != nil {
		logger.Warn("Failed to publish user registered event", logger.Err(err))
	}

	token, expiresAt, err := jwt.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Login verifies credentials and issues a token. Blocked profiles are
// refused even with correct credentials.
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	if user.Blocked {
		return nil, users.ErrUserBlocked
	}

	token, expiresAt, err := jwt.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// UpdatePassword changes the signed-in user's password after verifying the
// current one.
func (uc *userUC) UpdatePassword(ctx context.Context, session *models.Session, req models.UpdatePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return users.ErrWeakPassword
	}

	user, err := uc.repo.GetUser(ctx, session.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return users.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return uc.repo.UpdatePassword(ctx, session.UserID, string(hash))
}

// RequestPasswordReset issues a short-lived reset token. The token is
// handed to the mail delivery outside this service; unknown emails get no
// error so the endpoint cannot be used to probe for accounts.
func (uc *userUC) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	token, err := utils.GenerateCode(resetTokenLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := uc.repo.SetResetToken(ctx, user.ID, token, uc.now().Add(resetTokenTTL)); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

// ResetPassword sets a new password for the user holding a valid token.
func (uc *userUC) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return users.ErrWeakPassword
	}

	user, err := uc.repo.GetUserByResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	return uc.repo.ClearResetToken(ctx, user.ID)
}

// GetProfile returns the signed-in user's own profile.
func (uc *userUC) GetProfile(ctx context.Context, session *models.Session) (*models.User, error) {
	return uc.repo.GetUser(ctx, session.UserID)
}

// UpdateProfile edits the signed-in user's name.
func (uc *userUC) UpdateProfile(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.User, error) {
	if err := uc.repo.UpdateProfile(ctx, session.UserID, req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	return uc.repo.GetUser(ctx, session.UserID)
}

// ListUsers returns all profiles. Admin only.
func (uc *userUC) ListUsers(ctx context.Context, session *models.Session) ([]*models.User, error) {
	if !session.Capabilities.ManageUsers {
		return nil, users.ErrForbidden
	}
	return uc.repo.ListUsers(ctx)
}

// AdminUpdateUser sets flags, blocked state and group membership of a
// profile. Only fields present in the payload are touched.
func (uc *userUC) AdminUpdateUser(ctx context.Context, session *models.Session, userID uuid.UUID, req models.AdminUserUpdate) (*models.User, error) {
	if !session.Capabilities.ManageUsers {
		return nil, users.ErrForbidden
	}

	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.GroupID != nil {
		if _, err := uc.repo.GetGroup(ctx, *req.GroupID); err != nil {
			return nil, err
		}
		user.GroupID = req.GroupID
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsGroupAdmin != nil {
		user.IsGroupAdmin = *req.IsGroupAdmin
	}
	if req.Blocked != nil {
		user.Blocked = *req.Blocked
	}
	user.UpdatedAt = uc.now()

	if err := uc.repo.AdminUpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// CreateGroup adds a new group. Admin only.
func (uc *userUC) CreateGroup(ctx context.Context, session *models.Session, req models.GroupRequest) (*models.Group, error) {
	if !session.IsAdmin() {
		return nil, users.ErrForbidden
	}
	if req.Name == "" {
		return nil, users.ErrNameRequired
	}

	group := &models.Group{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: uc.now(),
	}

	if err := uc.repo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetGroup returns the caller's own group.
func (uc *userUC) GetGroup(ctx context.Context, session *models.Session) (*models.Group, error) {
	if session.GroupID == nil {
		return nil, users.ErrNoGroup
	}
	return uc.repo.GetGroup(ctx, *session.GroupID)
}

// ListGroups returns all groups. Admin only; members see just their own
// via GetGroup.
func (uc *userUC) ListGroups(ctx context.Context, session *models.Session) ([]*models.Group, error) {
	if !session.IsAdmin() {
		return nil, users.ErrForbidden
	}
	return uc.repo.ListGroups(ctx)
}

// UpdateGroup renames a group. Admins any group; group admins their own.
func (uc *userUC) UpdateGroup(ctx context.Context, session *models.Session, groupID uuid.UUID, req models.GroupRequest) (*models.Group, error) {
	if !session.Capabilities.ManageGroup {
		return nil, users.ErrForbidden
	}
	if !session.IsAdmin() && !session.SameGroup(groupID) {
		return nil, users.ErrForbidden
	}
	if req.Name == "" {
		return nil, users.ErrNameRequired
	}

	group, err := uc.repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	if err := uc.repo.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// DeleteGroup removes a group. Admin only.
func (uc *userUC) DeleteGroup(ctx context.Context, session *models.Session, groupID uuid.UUID) error {
	if !session.IsAdmin() {
		return users.ErrForbidden
	}
	return uc.repo.DeleteGroup(ctx, groupID)
}
