package invites

import (
	"context"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// InviteRepo defines the interface for invitation code data access.
// UseCode advances the use counter with a single conditional update, so
// concurrent registrations can never push a code past its limit.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/invites InviteRepo
type InviteRepo interface {
	CreateCode(ctx context.Context, code *models.InviteCode) error
	GetCode(ctx context.Context, code string) (*models.InviteCode, error)
	ListCodes(ctx context.Context, groupID uuid.UUID) ([]*models.InviteCode, error)
	DeactivateCode(ctx context.Context, id uuid.UUID) error
	// UseCode atomically increments uses_count if the code is still usable
	// and returns the target group. ErrCodeNotFound when the guard fails.
	UseCode(ctx context.Context, code string) (uuid.UUID, error)
}

// InviteUC defines the interface for the invitation code business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/invites InviteUC
type InviteUC interface {
	CreateCode(ctx context.Context, session *models.Session, req models.InviteCodeRequest) (*models.InviteCode, error)
	ListCodes(ctx context.Context, session *models.Session) ([]*models.InviteCode, error)
	DeactivateCode(ctx context.Context, session *models.Session, codeID uuid.UUID) error
	// Validate checks a code without consuming it and returns the target
	// group. The failure reason is a distinct sentinel per cause.
	Validate(ctx context.Context, code string) (uuid.UUID, error)
	// Use validates and consumes a code in one step during registration.
	Use(ctx context.Context, code string) (uuid.UUID, error)
}
