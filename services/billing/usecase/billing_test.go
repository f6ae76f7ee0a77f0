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
	"github.com/fahrtenbuch/backend/services/billing"
	"github.com/fahrtenbuch/backend/services/billing/mocks"
)

type billingMocks struct {
	repo  *mocks.MockBillingRepo
	gw    *mocks.MockBillingGW
	cache *mocks.MockCostsCache
}

func newBillingUC(t *testing.T, at time.Time) (*billingUC, billingMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := billingMocks{
		repo:  mocks.NewMockBillingRepo(ctrl),
		gw:    mocks.NewMockBillingGW(ctrl),
		cache: mocks.NewMockCostsCache(ctrl),
	}

	uc := &billingUC{
		cfg:   &models.Config{Billing: models.BillingConfig{SettlementTypeLabel: "Einzahlung"}},
		repo:  m.repo,
		gw:    m.gw,
		cache: m.cache,
		now:   func() time.Time { return at },
	}
	return uc, m
}

func memberSession(userID, groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       userID,
		GroupID:      &groupID,
		Role:         models.RoleMember,
		Capabilities: models.CapabilitiesForRole(models.RoleMember),
	}
}

func adminSession(groupID uuid.UUID) *models.Session {
	return &models.Session{
		UserID:       uuid.New(),
		GroupID:      &groupID,
		Role:         models.RoleAdmin,
		Capabilities: models.CapabilitiesForRole(models.RoleAdmin),
	}
}

func TestCreateReceipt_Valid(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	userID := uuid.New()
	groupID := uuid.New()
	typeID := uuid.New()
	req := models.ReceiptRequest{Date: now.Add(-time.Hour), TypeID: typeID, Amount: 42.50}

	m.repo.EXPECT().GetReceiptType(gomock.Any(), typeID).Return(&models.ReceiptType{ID: typeID, Active: true}, nil)
	m.repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *models.Receipt) error {
			assert.Equal(t, groupID, rc.GroupID)
			assert.Equal(t, userID, rc.DriverID)
			assert.Equal(t, 42.50, rc.Amount)
			return nil
		})
	m.gw.EXPECT().PublishReceiptCreated(gomock.Any(), gomock.Any()).Return(nil)

	receipt, err := uc.CreateReceipt(context.Background(), memberSession(userID, groupID), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, receipt.ID)
}

func TestCreateReceipt_Validation(t *testing.T) {
	now := time.Now()
	uc, _ := newBillingUC(t, now)
	session := memberSession(uuid.New(), uuid.New())

	_, err := uc.CreateReceipt(context.Background(), session, models.ReceiptRequest{Amount: 0, Date: now})
	assert.ErrorIs(t, err, billing.ErrAmountNotPositive)

	_, err = uc.CreateReceipt(context.Background(), session, models.ReceiptRequest{Amount: -5, Date: now})
	assert.ErrorIs(t, err, billing.ErrAmountNotPositive)

	_, err = uc.CreateReceipt(context.Background(), session, models.ReceiptRequest{Amount: 10, Date: now.Add(time.Hour)})
	assert.ErrorIs(t, err, billing.ErrDateInFuture)
}

func TestDeleteReceipt_OwnerWithinWindow(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	owner := uuid.New()
	groupID := uuid.New()
	receipt := &models.Receipt{
		ID:        uuid.New(),
		GroupID:   groupID,
		DriverID:  owner,
		CreatedAt: now.Add(-23 * time.Hour),
	}

	m.repo.EXPECT().GetReceipt(gomock.Any(), receipt.ID).Return(receipt, nil)
	m.repo.EXPECT().DeleteReceipt(gomock.Any(), receipt.ID).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), groupID).Return(nil)

	err := uc.DeleteReceipt(context.Background(), memberSession(owner, groupID), receipt.ID)
	require.NoError(t, err)
}

func TestDeleteReceipt_OwnerAfterWindowRejected(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	owner := uuid.New()
	groupID := uuid.New()
	receipt := &models.Receipt{
		ID:        uuid.New(),
		GroupID:   groupID,
		DriverID:  owner,
		CreatedAt: now.Add(-25 * time.Hour),
	}

	m.repo.EXPECT().GetReceipt(gomock.Any(), receipt.ID).Return(receipt, nil)

	err := uc.DeleteReceipt(context.Background(), memberSession(owner, groupID), receipt.ID)
	assert.ErrorIs(t, err, billing.ErrDeleteWindowExpired)
}

func TestDeleteReceipt_AdminAnytime(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	groupID := uuid.New()
	receipt := &models.Receipt{
		ID:        uuid.New(),
		GroupID:   groupID,
		DriverID:  uuid.New(),
		CreatedAt: now.Add(-30 * 24 * time.Hour),
	}

	m.repo.EXPECT().GetReceipt(gomock.Any(), receipt.ID).Return(receipt, nil)
	m.repo.EXPECT().DeleteReceipt(gomock.Any(), receipt.ID).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), groupID).Return(nil)

	err := uc.DeleteReceipt(context.Background(), adminSession(groupID), receipt.ID)
	require.NoError(t, err)
}

func TestDeleteReceipt_ForeignReceiptRejected(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	groupID := uuid.New()
	receipt := &models.Receipt{
		ID:        uuid.New(),
		GroupID:   groupID,
		DriverID:  uuid.New(),
		CreatedAt: now,
	}

	m.repo.EXPECT().GetReceipt(gomock.Any(), receipt.ID).Return(receipt, nil)

	err := uc.DeleteReceipt(context.Background(), memberSession(uuid.New(), groupID), receipt.ID)
	assert.ErrorIs(t, err, billing.ErrNotReceiptOwner)
}

func TestDeleteReceiptType_RefusedWhenReferenced(t *testing.T) {
	uc, m := newBillingUC(t, time.Now())

	typeID := uuid.New()
	m.repo.EXPECT().ReceiptTypeInUse(gomock.Any(), typeID).Return(true, nil)

	err := uc.DeleteReceiptType(context.Background(), adminSession(uuid.New()), typeID)
	assert.ErrorIs(t, err, billing.ErrTypeInUse)
}

func TestDeleteReceiptType_UnreferencedRemoved(t *testing.T) {
	uc, m := newBillingUC(t, time.Now())

	typeID := uuid.New()
	m.repo.EXPECT().ReceiptTypeInUse(gomock.Any(), typeID).Return(false, nil)
	m.repo.EXPECT().DeleteReceiptType(gomock.Any(), typeID).Return(nil)

	err := uc.DeleteReceiptType(context.Background(), adminSession(uuid.New()), typeID)
	require.NoError(t, err)
}

func TestReceiptTypes_MemberForbidden(t *testing.T) {
	uc, _ := newBillingUC(t, time.Now())
	member := memberSession(uuid.New(), uuid.New())

	_, err := uc.CreateReceiptType(context.Background(), member, models.ReceiptTypeRequest{Label: "Fuel"})
	assert.ErrorIs(t, err, billing.ErrForbidden)

	err = uc.DeactivateReceiptType(context.Background(), member, uuid.New())
	assert.ErrorIs(t, err, billing.ErrForbidden)
}

func TestGetGroupCosts_CacheFirst(t *testing.T) {
	uc, m := newBillingUC(t, time.Now())

	groupID := uuid.New()
	cached := &models.GroupCosts{GroupID: groupID, TotalKm: 120, KmCost: 36, ReceiptsTotal: 50}

	m.cache.EXPECT().GetGroupCosts(gomock.Any(), groupID).Return(cached, nil)

	costs, err := uc.GetGroupCosts(context.Background(), memberSession(uuid.New(), groupID))
	require.NoError(t, err)
	assert.Equal(t, cached, costs)
	assert.InDelta(t, 14.0, costs.Balance(), 1e-9)
}

func TestGetGroupCosts_MissFallsThroughAndCaches(t *testing.T) {
	uc, m := newBillingUC(t, time.Now())

	groupID := uuid.New()
	fresh := &models.GroupCosts{GroupID: groupID, TotalKm: 10}

	m.cache.EXPECT().GetGroupCosts(gomock.Any(), groupID).Return(nil, nil)
	m.repo.EXPECT().GetGroupCosts(gomock.Any(), groupID).Return(fresh, nil)
	m.cache.EXPECT().SetGroupCosts(gomock.Any(), fresh).Return(nil)

	costs, err := uc.GetGroupCosts(context.Background(), memberSession(uuid.New(), groupID))
	require.NoError(t, err)
	assert.Equal(t, fresh, costs)
}

func TestRecordSettlement_BooksReceiptOfSettlementType(t *testing.T) {
	now := time.Now()
	uc, m := newBillingUC(t, now)

	userID := uuid.New()
	groupID := uuid.New()
	settlementType := &models.ReceiptType{ID: uuid.New(), Label: "Einzahlung", Active: true}

	m.repo.EXPECT().GetReceiptTypeByLabel(gomock.Any(), "Einzahlung").Return(settlementType, nil)
	m.repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *models.Receipt) error {
			assert.Equal(t, settlementType.ID, rc.TypeID)
			assert.Equal(t, 25.0, rc.Amount)
			assert.Equal(t, "ref-123", rc.Comment)
			return nil
		})
	m.gw.EXPECT().PublishReceiptCreated(gomock.Any(), gomock.Any()).Return(nil)

	receipt, err := uc.RecordSettlement(context.Background(), memberSession(userID, groupID),
		models.CheckoutResult{Amount: 25.0, Reference: "ref-123"})
	require.NoError(t, err)
	assert.Equal(t, userID, receipt.DriverID)
}

func TestRecordSettlement_MissingTypeRejected(t *testing.T) {
	uc, m := newBillingUC(t, time.Now())

	m.repo.EXPECT().GetReceiptTypeByLabel(gomock.Any(), "Einzahlung").Return(nil, billing.ErrTypeNotFound)

	_, err := uc.RecordSettlement(context.Background(), memberSession(uuid.New(), uuid.New()),
		models.CheckoutResult{Amount: 10})
	assert.ErrorIs(t, err, billing.ErrSettlementTypeMissing)
}
