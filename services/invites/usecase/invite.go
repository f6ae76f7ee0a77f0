package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/invites"
)

// inviteCodeLength is the length of generated invitation codes.
const inviteCodeLength = 8

// inviteUC implements the invites.InviteUC interface
type inviteUC struct {
	cfg  *models.Config
	repo invites.InviteRepo
	now  func() time.Time
}

// NewInviteUC creates a new invitation code use case
func NewInviteUC(cfg *models.Config, repo invites.InviteRepo) invites.InviteUC {
	return &inviteUC{
		cfg:  cfg,
		repo: repo,
		now:  time.Now,
	}
}

// CreateCode issues a new invitation code. Admins may issue for any group;
// group admins only for their own.
func (uc *inviteUC) CreateCode(ctx context.Context, session *models.Session, req models.InviteCodeRequest) (*models.InviteCode, error) {
	if !session.Capabilities.ManageInvites {
		return nil, invites.ErrForbidden
	}

	groupID := req.GroupID
	if !session.IsAdmin() {
		if session.GroupID == nil || *session.GroupID != groupID {
			return nil, invites.ErrForbidden
		}
	}

	if req.MaxUses <= 0 {
		return nil, invites.ErrMaxUsesNotPositive
	}

	raw, err := utils.GenerateCode(inviteCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation code: %w", err)
	}

	code := &models.InviteCode{
		ID:        uuid.New(),
		Code:      raw,
		GroupID:   groupID,
		CreatedBy: session.UserID,
		ExpiresAt: req.ExpiresAt,
		MaxUses:   req.MaxUses,
		Active:    true,
		CreatedAt: uc.now(),
	}

	if err := uc.repo.CreateCode(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to create invitation code: %w", err)
	}

	return code, nil
}

// ListCodes returns the codes of the caller's group; admins see their own
// group's codes too, scoped the same way.
func (uc *inviteUC) ListCodes(ctx context.Context, session *models.Session) ([]*models.InviteCode, error) {
	if !session.Capabilities.ManageInvites {
		return nil, invites.ErrForbidden
	}
	if session.GroupID == nil {
		return []*models.InviteCode{}, nil
	}
	return uc.repo.ListCodes(ctx, *session.GroupID)
}

// DeactivateCode retires a code so it can no longer be used.
func (uc *inviteUC) DeactivateCode(ctx context.Context, session *models.Session, codeID uuid.UUID) error {
	if !session.Capabilities.ManageInvites {
		return invites.ErrForbidden
	}
	return uc.repo.DeactivateCode(ctx, codeID)
}

// Validate checks a code without consuming it. Each failure cause has its
// own sentinel so the registration form can show a precise message.
func (uc *inviteUC) Validate(ctx context.Context, code string) (uuid.UUID, error) {
	found, err := uc.repo.GetCode(ctx, code)
	if err != nil {
		return uuid.Nil, err
	}

	switch {
	case !found.Active:
		return uuid.Nil, invites.ErrCodeInactive
	case found.Expired(uc.now()):
		return uuid.Nil, invites.ErrCodeExpired
	case found.Exhausted():
		return uuid.Nil, invites.ErrCodeExhausted
	}

	return found.GroupID, nil
}

// Use consumes a code during registration. Validation runs first to report
// a precise reason; the repository's conditional update is the actual
// guard, so two racing registrations cannot both take the last use.
func (uc *inviteUC) Use(ctx context.Context, code string) (uuid.UUID, error) {
	if _, err := uc.Validate(ctx, code); err != nil {
		return uuid.Nil, err
	}

	groupID, err := uc.repo.UseCode(ctx, code)
	if err != nil {
		if errors.Is(err, invites.ErrCodeNotFound) {
			// The guard failed between validation and use: someone else
			// took the last slot or the code was retired.
			return uuid.Nil, invites.ErrCodeExhausted
		}
		return uuid.Nil, fmt.Errorf("failed to use invitation code: %w", err)
	}

	return groupID, nil
}
