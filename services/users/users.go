package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// UserRepo defines the interface for user and group data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	AdminUpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*models.User, error)
	ClearResetToken(ctx context.Context, id uuid.UUID) error

	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}

// UserUC defines the interface for identity and group management
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	UpdatePassword(ctx context.Context, session *models.Session, req models.UpdatePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	GetProfile(ctx context.Context, session *models.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.User, error)

	ListUsers(ctx context.Context, session *models.Session) ([]*models.User, error)
	AdminUpdateUser(ctx context.Context, session *models.Session, userID uuid.UUID, req models.AdminUserUpdate) (*models.User, error)

	CreateGroup(ctx context.Context, session *models.Session, req models.GroupRequest) (*models.Group, error)
	GetGroup(ctx context.Context, session *models.Session) (*models.Group, error)
	ListGroups(ctx context.Context, session *models.Session) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, session *models.Session, groupID uuid.UUID, req models.GroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, session *models.Session, groupID uuid.UUID) error
}

// UserGW defines the interface for user event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fahrtenbuch/backend/services/users UserGW
type UserGW interface {
	PublishUserRegistered(ctx context.Context, user *models.User) error
}
