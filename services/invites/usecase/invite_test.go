package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/invites"
	"github.com/fahrtenbuch/backend/services/invites/mocks"
)

func newInviteUC(t *testing.T) (invites.InviteUC, *mocks.MockInviteRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockInviteRepo(ctrl)
	return NewInviteUC(&models.Config{}, repo), repo
}

func groupAdminSession(groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleGroupAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleGroupAdmin),
	}
}

func usableCode(groupID uuid.UUID) *models.InviteCode {
	return &models.InviteCode{
		ID:      uuid.New(),
		Code:    "ABCD2345",
		GroupID: groupID,
		MaxUses: 5,
		Active:  true,
	}
}

func TestCreateCode_GeneratesUnambiguousCode(t *testing.T) {
	uc, repo := newInviteUC(t)

	groupID := uuid.New()
	session := groupAdminSession(groupID)

	repo.EXPECT().
		CreateCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code *models.InviteCode) error {
			assert.Len(t, code.Code, 8)
			assert.NotContains(t, code.Code, "0")
			assert.NotContains(t, code.Code, "O")
			assert.NotContains(t, code.Code, "1")
			assert.NotContains(t, code.Code, "I")
			assert.Equal(t, groupID, code.GroupID)
			assert.True(t, code.Active)
			assert.Zero(t, code.UsesCount)
			return nil
		})

	code, err := uc.CreateCode(context.Background(), session, models.InviteCodeRequest{GroupID: groupID, MaxUses: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, code.MaxUses)
}

func TestCreateCode_GroupAdminScopedToOwnGroup(t *testing.T) {
	uc, _ := newInviteUC(t)

	session := groupAdminSession(uuid.New())
	otherGroup := uuid.New()

	_, err := uc.CreateCode(context.Background(), session, models.InviteCodeRequest{GroupID: otherGroup, MaxUses: 1})
	assert.ErrorIs(t, err, invites.ErrForbidden)
}

func TestCreateCode_MemberForbidden(t *testing.T) {
	uc, _ := newInviteUC(t)

	groupID := uuid.New()
	member := &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}

	_, err := uc.CreateCode(context.Background(), member, models.InviteCodeRequest{GroupID: groupID, MaxUses: 1})
	assert.ErrorIs(t, err, invites.ErrForbidden)
}

func TestCreateCode_RejectsNonPositiveMaxUses(t *testing.T) {
	uc, _ := newInviteUC(t)

	groupID := uuid.New()
	_, err := uc.CreateCode(context.Background(), groupAdminSession(groupID), models.InviteCodeRequest{GroupID: groupID, MaxUses: 0})
	assert.ErrorIs(t, err, invites.ErrMaxUsesNotPositive)
}

func TestValidate_DistinctFailureReasons(t *testing.T) {
	groupID := uuid.New()
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		code    *models.InviteCode
		wantErr error
	}{
		{
			name: "inactive",
			code: func() *models.InviteCode {
				c := usableCode(groupID)
				c.Active = false
				return c
			}(),
			wantErr: invites.ErrCodeInactive,
		},
		{
			name: "expired",
			code: func() *models.InviteCode {
				c := usableCode(groupID)
				c.ExpiresAt = &past
				return c
			}(),
			wantErr: invites.ErrCodeExpired,
		},
		{
			name: "exhausted",
			code: func() *models.InviteCode {
				c := usableCode(groupID)
				c.UsesCount = c.MaxUses
				return c
			}(),
			wantErr: invites.ErrCodeExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newInviteUC(t)
			repo.EXPECT().GetCode(gomock.Any(), tt.code.Code).Return(tt.code, nil)

			_, err := uc.Validate(context.Background(), tt.code.Code)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UnknownCode(t *testing.T) {
	uc, repo := newInviteUC(t)

	repo.EXPECT().GetCode(gomock.Any(), "NOPE2345").Return(nil, invites.ErrCodeNotFound)

	_, err := uc.Validate(context.Background(), "NOPE2345")
	assert.ErrorIs(t, err, invites.ErrCodeNotFound)
}

func TestValidate_UsableCodeReturnsGroup(t *testing.T) {
	uc, repo := newInviteUC(t)

	groupID := uuid.New()
	code := usableCode(groupID)
	repo.EXPECT().GetCode(gomock.Any(), code.Code).Return(code, nil)

	got, err := uc.Validate(context.Background(), code.Code)
	require.NoError(t, err)
	assert.Equal(t, groupID, got)
}

func TestUse_ConsumesThroughConditionalUpdate(t *testing.T) {
	uc, repo := newInviteUC(t)

	groupID := uuid.New()
	code := usableCode(groupID)

	repo.EXPECT().GetCode(gomock.Any(), code.Code).Return(code, nil)
	repo.EXPECT().UseCode(gomock.Any(), code.Code).Return(groupID, nil)

	got, err := uc.Use(context.Background(), code.Code)
	require.NoError(t, err)
	assert.Equal(t, groupID, got)
}

func TestUse_RaceLoserGetsExhausted(t *testing.T) {
	// Validation passes but the conditional update matches no row: another
	// registration took the last use in between.
	uc, repo := newInviteUC(t)

	groupID := uuid.New()
	code := usableCode(groupID)

	repo.EXPECT().GetCode(gomock.Any(), code.Code).Return(code, nil)
	repo.EXPECT().UseCode(gomock.Any(), code.Code).Return(uuid.Nil, invites.ErrCodeNotFound)

	_, err := uc.Use(context.Background(), code.Code)
	assert.ErrorIs(t, err, invites.ErrCodeExhausted)
}
