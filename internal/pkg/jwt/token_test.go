package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "carshare-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	groupID := uuid.New()
	user := &models.User{
		ID:      uuid.New(),
		GroupID: &groupID,
		IsAdmin: true,
	}

	token, expiresAt, err := GenerateToken(user, testJWTConfig())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, groupID.String(), claims["group_id"])
	assert.Equal(t, "carshare-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New()}

	token, _, err := GenerateToken(user, testJWTConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	user := &models.User{ID: uuid.New()}
	token, _, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestSessionFromClaims(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()

	claims := jwtlib.MapClaims{
		"user_id":  userID.String(),
		"role":     models.RoleGroupAdmin,
		"group_id": groupID.String(),
	}

	session, err := SessionFromClaims(claims)
	require.NoError(t, err)

	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, models.RoleGroupAdmin, session.Role)
	require.NotNil(t, session.GroupID)
	assert.Equal(t, groupID, *session.GroupID)
	assert.True(t, session.Capabilities.ManageInvites)
	assert.False(t, session.Capabilities.ManageUsers)
}

func TestSessionFromClaims_MissingUserID(t *testing.T) {
	_, err := SessionFromClaims(jwtlib.MapClaims{"role": models.RoleMember})
	assert.Error(t, err)
}

func TestCapabilitiesForRole(t *testing.T) {
	admin := models.CapabilitiesForRole(models.RoleAdmin)
	assert.True(t, admin.ManageUsers)
	assert.True(t, admin.DeleteAnyReceipt)
	assert.True(t, admin.EditAnyBooking)

	groupAdmin := models.CapabilitiesForRole(models.RoleGroupAdmin)
	assert.True(t, groupAdmin.ManageGroup)
	assert.False(t, groupAdmin.ManageUsers)

	member := models.CapabilitiesForRole(models.RoleMember)
	assert.False(t, member.ManageGroup)
	assert.False(t, member.DeleteAnyReceipt)
}
