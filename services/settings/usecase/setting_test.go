package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/settings"
	"github.com/fahrtenbuch/backend/services/settings/mocks"
)

func newSettingsUC(t *testing.T) (settings.SettingsUC, *mocks.MockSettingsRepo, *mocks.MockRateCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSettingsRepo(ctrl)
	cache := mocks.NewMockRateCache(ctrl)
	cfg := &models.Config{Billing: models.BillingConfig{FallbackRatePerKm: 0.25}}
	return NewSettingsUC(cfg, repo, cache), repo, cache
}

func adminSession() *models.Session {
	groupID := uuid.New()
	return &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleAdmin),
	}
}

func TestUpdateSetting_MemberForbidden(t *testing.T) {
	uc, _, _ := newSettingsUC(t)

	groupID := uuid.New()
	member := &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}

	_, err := uc.UpdateSetting(context.Background(), member, models.SettingPayPalContact, models.SettingRequest{Value: "pay@example.org"})
	assert.ErrorIs(t, err, settings.ErrForbidden)
}

func TestUpdateSetting_RecordsAuditTrail(t *testing.T) {
	uc, repo, _ := newSettingsUC(t)

	admin := adminSession()
	repo.EXPECT().
		UpsertSetting(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Setting) error {
			require.NotNil(t, s.UpdatedBy)
			assert.Equal(t, admin.UserID, *s.UpdatedBy)
			assert.Equal(t, "pay@example.org", s.Value)
			return nil
		})

	setting, err := uc.UpdateSetting(context.Background(), admin, models.SettingPayPalContact, models.SettingRequest{Value: "pay@example.org"})
	require.NoError(t, err)
	assert.False(t, setting.UpdatedAt.IsZero())
}

func TestUpdateSetting_RateValidatedAndCacheCleared(t *testing.T) {
	uc, repo, cache := newSettingsUC(t)
	admin := adminSession()

	_, err := uc.UpdateSetting(context.Background(), admin, models.SettingCostPerKm, models.SettingRequest{Value: "abc"})
	assert.ErrorIs(t, err, settings.ErrInvalidRate)

	_, err = uc.UpdateSetting(context.Background(), admin, models.SettingCostPerKm, models.SettingRequest{Value: "-0.5"})
	assert.ErrorIs(t, err, settings.ErrInvalidRate)

	repo.EXPECT().UpsertSetting(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().ClearRate(gomock.Any()).Return(nil)

	_, err = uc.UpdateSetting(context.Background(), admin, models.SettingCostPerKm, models.SettingRequest{Value: "0.35"})
	require.NoError(t, err)
}

func TestRatePerKm_CacheHit(t *testing.T) {
	uc, _, cache := newSettingsUC(t)

	cache.EXPECT().GetRate(gomock.Any()).Return(0.30, true, nil)

	rate, err := uc.RatePerKm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.30, rate)
}

func TestRatePerKm_MissReadsSettingAndCaches(t *testing.T) {
	uc, repo, cache := newSettingsUC(t)

	cache.EXPECT().GetRate(gomock.Any()).Return(0.0, false, nil)
	repo.EXPECT().GetSetting(gomock.Any(), models.SettingCostPerKm).
		Return(&models.Setting{Key: models.SettingCostPerKm, Value: "0.42"}, nil)
	cache.EXPECT().SetRate(gomock.Any(), 0.42).Return(nil)

	rate, err := uc.RatePerKm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.42, rate)
}

func TestRatePerKm_FallbackWhenSettingAbsent(t *testing.T) {
	uc, repo, cache := newSettingsUC(t)

	cache.EXPECT().GetRate(gomock.Any()).Return(0.0, false, nil)
	repo.EXPECT().GetSetting(gomock.Any(), models.SettingCostPerKm).
		Return(nil, settings.ErrSettingNotFound)

	rate, err := uc.RatePerKm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.25, rate)
}

func TestRatePerKm_FallbackWhenSettingUnparsable(t *testing.T) {
	uc, repo, cache := newSettingsUC(t)

	cache.EXPECT().GetRate(gomock.Any()).Return(0.0, false, nil)
	repo.EXPECT().GetSetting(gomock.Any(), models.SettingCostPerKm).
		Return(&models.Setting{Key: models.SettingCostPerKm, Value: "not-a-number"}, nil)

	rate, err := uc.RatePerKm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.25, rate)
}
