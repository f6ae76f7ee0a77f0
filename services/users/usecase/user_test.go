package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/invites"
	inviteMocks "github.com/fahrtenbuch/backend/services/invites/mocks"
	"github.com/fahrtenbuch/backend/services/users"
	"github.com/fahrtenbuch/backend/services/users/mocks"
)

type userMocks struct {
	repo     *mocks.MockUserRepo
	inviteUC *inviteMocks.MockInviteUC
	gw       *mocks.MockUserGW
}

func newUserUC(t *testing.T) (users.UserUC, userMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userMocks{
		repo:     mocks.NewMockUserRepo(ctrl),
		inviteUC: inviteMocks.NewMockInviteUC(ctrl),
		gw:       mocks.NewMockUserGW(ctrl),
	}

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "fahrtenbuch-test",
		},
	}

	return NewUserUC(cfg, m.repo, m.inviteUC, m.gw), m
}

func adminSession() *models.Session {
	return &models.Session{
		UserID:       uuid.New(),
		Role:         models.RoleAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleAdmin),
	}
}

func memberSession(groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_CreatesProfileAndConsumesCode(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()
	groupID := uuid.New()

	req := models.RegisterRequest{
		Email:      "anna@example.com",
		Password:   "correct horse battery",
		FirstName:  "Anna",
		LastName:   "Huber",
		InviteCode: "WXYZ2345",
	}

	var created *models.User
	m.inviteUC.EXPECT().Validate(ctx, "WXYZ2345").Return(groupID, nil)
	m.repo.EXPECT().GetUserByEmail(ctx, "anna@example.com").Return(nil, users.ErrUserNotFound)
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			created = user
			return nil
		})
	m.inviteUC.EXPECT().Use(ctx, "WXYZ2345").Return(groupID, nil)
	m.gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(nil)

	resp, err := uc.Register(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.GroupID)
	assert.Equal(t, groupID, *created.GroupID)
	assert.Equal(t, "Anna", created.FirstName)
	assert.False(t, created.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(req.Password)))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created, resp.User)
}

func TestRegister_RaceLoserRollsBackProfile(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()
	groupID := uuid.New()

	req := models.RegisterRequest{
		Email:      "late@example.com",
		Password:   "long enough pw",
		InviteCode: "WXYZ2345",
	}

	var createdID uuid.UUID
	m.inviteUC.EXPECT().Validate(ctx, "WXYZ2345").Return(groupID, nil)
	m.repo.EXPECT().GetUserByEmail(ctx, "late@example.com").Return(nil, users.ErrUserNotFound)
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			createdID = user.ID
			return nil
		})
	m.inviteUC.EXPECT().Use(ctx, "WXYZ2345").Return(uuid.Nil, invites.ErrCodeExhausted)
	m.repo.EXPECT().DeleteUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, createdID, id)
			return nil
		})

	_, err := uc.Register(ctx, req)

	assert.ErrorIs(t, err, invites.ErrCodeExhausted)
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:      "taken@example.com",
		Password:   "long enough pw",
		InviteCode: "WXYZ2345",
	}

	m.inviteUC.EXPECT().Validate(ctx, "WXYZ2345").Return(uuid.New(), nil)
	m.repo.EXPECT().GetUserByEmail(ctx, "taken@example.com").Return(&models.User{}, nil)

	_, err := uc.Register(ctx, req)

	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, models.RegisterRequest{Email: "not-an-email", Password: "long enough pw"})
	assert.ErrorIs(t, err, users.ErrInvalidEmail)

	_, err = uc.Register(ctx, models.RegisterRequest{Email: "ok@example.com", Password: "short"})
	assert.ErrorIs(t, err, users.ErrWeakPassword)
}

func TestRegister_UnusableCodeStopsBeforeAnyWrite(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:      "new@example.com",
		Password:   "long enough pw",
		InviteCode: "EXPIRED1",
	}

	m.inviteUC.EXPECT().Validate(ctx, "EXPIRED1").Return(uuid.Nil, invites.ErrCodeExpired)

	_, err := uc.Register(ctx, req)

	assert.ErrorIs(t, err, invites.ErrCodeExpired)
}

func TestLogin_IssuesToken(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "anna@example.com",
		PasswordHash: hashOf(t, "long enough pw"),
	}
	m.repo.EXPECT().GetUserByEmail(ctx, "anna@example.com").Return(user, nil)

	resp, err := uc.Login(ctx, models.LoginRequest{Email: "anna@example.com", Password: "long enough pw"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, user, resp.User)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(nil, users.ErrUserNotFound)
	_, err := uc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	user := &models.User{ID: uuid.New(), PasswordHash: hashOf(t, "real password")}
	m.repo.EXPECT().GetUserByEmail(ctx, "anna@example.com").Return(user, nil)
	_, err = uc.Login(ctx, models.LoginRequest{Email: "anna@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLogin_BlockedProfileRefused(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		PasswordHash: hashOf(t, "long enough pw"),
		Blocked:      true,
	}
	m.repo.EXPECT().GetUserByEmail(ctx, "anna@example.com").Return(user, nil)

	_, err := uc.Login(ctx, models.LoginRequest{Email: "anna@example.com", Password: "long enough pw"})

	assert.ErrorIs(t, err, users.ErrUserBlocked)
}

func TestUpdatePassword_VerifiesCurrentPassword(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()
	session := memberSession(uuid.New())

	user := &models.User{ID: session.UserID, PasswordHash: hashOf(t, "old password")}

	m.repo.EXPECT().GetUser(ctx, session.UserID).Return(user, nil)
	err := uc.UpdatePassword(ctx, session, models.UpdatePasswordRequest{
		CurrentPassword: "not the old one",
		NewPassword:     "new password!",
	})
	assert.ErrorIs(t, err, users.ErrWrongPassword)

	m.repo.EXPECT().GetUser(ctx, session.UserID).Return(user, nil)
	m.repo.EXPECT().UpdatePassword(ctx, session.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new password!")))
			return nil
		})
	err = uc.UpdatePassword(ctx, session, models.UpdatePasswordRequest{
		CurrentPassword: "old password",
		NewPassword:     "new password!",
	})
	assert.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmailGivesNoSignal(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(nil, users.ErrUserNotFound)

	token, err := uc.RequestPasswordReset(ctx, "ghost@example.com")

	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestRequestPasswordReset_StoresShortLivedToken(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "anna@example.com"}
	m.repo.EXPECT().GetUserByEmail(ctx, "anna@example.com").Return(user, nil)
	m.repo.EXPECT().SetResetToken(ctx, user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string, expiresAt time.Time) error {
			assert.Len(t, token, 12)
			assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)
			return nil
		})

	token, err := uc.RequestPasswordReset(ctx, "anna@example.com")

	require.NoError(t, err)
	assert.Len(t, token, 12)
}

func TestResetPassword_SetsPasswordAndClearsToken(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New()}
	m.repo.EXPECT().GetUserByResetToken(ctx, "RESETTOKEN42").Return(user, nil)
	m.repo.EXPECT().UpdatePassword(ctx, user.ID, gomock.Any()).Return(nil)
	m.repo.EXPECT().ClearResetToken(ctx, user.ID).Return(nil)

	err := uc.ResetPassword(ctx, "RESETTOKEN42", "brand new password")

	assert.NoError(t, err)
}

func TestResetPassword_RejectsInvalidToken(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	m.repo.EXPECT().GetUserByResetToken(ctx, "STALETOKEN99").Return(nil, users.ErrResetTokenInvalid)

	err := uc.ResetPassword(ctx, "STALETOKEN99", "brand new password")

	assert.ErrorIs(t, err, users.ErrResetTokenInvalid)
}

func TestAdminUpdateUser_TouchesOnlyProvidedFields(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()
	session := adminSession()

	groupID := uuid.New()
	targetID := uuid.New()
	target := &models.User{
		ID:           targetID,
		GroupID:      &groupID,
		IsGroupAdmin: true,
	}

	blocked := true
	m.repo.EXPECT().GetUser(ctx, targetID).Return(target, nil)
	m.repo.EXPECT().AdminUpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.True(t, user.Blocked)
			assert.True(t, user.IsGroupAdmin)
			assert.Equal(t, &groupID, user.GroupID)
			return nil
		})

	updated, err := uc.AdminUpdateUser(ctx, session, targetID, models.AdminUserUpdate{Blocked: &blocked})

	require.NoError(t, err)
	assert.True(t, updated.Blocked)
}

func TestAdminUpdateUser_ValidatesTargetGroup(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()
	session := adminSession()

	targetID := uuid.New()
	badGroup := uuid.New()
	m.repo.EXPECT().GetUser(ctx, targetID).Return(&models.User{ID: targetID}, nil)
	m.repo.EXPECT().GetGroup(ctx, badGroup).Return(nil, users.ErrGroupNotFound)

	_, err := uc.AdminUpdateUser(ctx, session, targetID, models.AdminUserUpdate{GroupID: &badGroup})

	assert.ErrorIs(t, err, users.ErrGroupNotFound)
}

func TestAdminUpdateUser_MemberForbidden(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()

	_, err := uc.AdminUpdateUser(ctx, memberSession(uuid.New()), uuid.New(), models.AdminUserUpdate{})

	assert.ErrorIs(t, err, users.ErrForbidden)
}

func TestGroupManagement_AdminOnlyOperations(t *testing.T) {
	uc, _ := newUserUC(t)
	ctx := context.Background()
	session := memberSession(uuid.New())

	_, err := uc.CreateGroup(ctx, session, models.GroupRequest{Name: "Familie Huber"})
	assert.ErrorIs(t, err, users.ErrForbidden)

	_, err = uc.ListGroups(ctx, session)
	assert.ErrorIs(t, err, users.ErrForbidden)

	err = uc.DeleteGroup(ctx, session, uuid.New())
	assert.ErrorIs(t, err, users.ErrForbidden)
}

func TestUpdateGroup_GroupAdminScopedToOwnGroup(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	ownGroup := uuid.New()
	session := &models.Session{
		UserID:       uuid.New(),
		GroupID:      &ownGroup,
		Role:         models.RoleGroupAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleGroupAdmin),
	}

	m.repo.EXPECT().GetGroup(ctx, ownGroup).Return(&models.Group{ID: ownGroup, Name: "Alt"}, nil)
	m.repo.EXPECT().UpdateGroup(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, group *models.Group) error {
			assert.Equal(t, "Neu", group.Name)
			return nil
		})

	group, err := uc.UpdateGroup(ctx, session, ownGroup, models.GroupRequest{Name: "Neu"})
	require.NoError(t, err)
	assert.Equal(t, "Neu", group.Name)

	_, err = uc.UpdateGroup(ctx, session, uuid.New(), models.GroupRequest{Name: "Fremd"})
	assert.ErrorIs(t, err, users.ErrForbidden)
}

func TestGetGroup_RequiresGroupMembership(t *testing.T) {
	uc, m := newUserUC(t)
	ctx := context.Background()

	noGroup := &models.Session{UserID: uuid.New(), Role: models.RoleMember}
	_, err := uc.GetGroup(ctx, noGroup)
	assert.ErrorIs(t, err, users.ErrNoGroup)

	groupID := uuid.New()
	session := memberSession(groupID)
	m.repo.EXPECT().GetGroup(ctx, groupID).Return(&models.Group{ID: groupID}, nil)

	group, err := uc.GetGroup(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, groupID, group.ID)
}
