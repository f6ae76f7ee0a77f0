package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/billing"
)

// receiptDeleteWindow is how long a member may delete their own receipt.
const receiptDeleteWindow = 24 * time.Hour

// billingUC implements the billing.BillingUC interface
type billingUC struct {
	cfg   *models.Config
	repo  billing.BillingRepo
	gw    billing.BillingGW
	cache billing.CostsCache
	now   func() time.Time
}

// NewBillingUC creates a new billing use case
func NewBillingUC(
	cfg *models.Config,
	repo billing.BillingRepo,
	gw billing.BillingGW,
	cache billing.CostsCache,
) billing.BillingUC {
	return &billingUC{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		cache: cache,
		now:   time.Now,
	}
}

// CreateReceipt records a payment toward the group's balance.
func (uc *billingUC) CreateReceipt(ctx context.Context, session *models.Session, req models.ReceiptRequest) (*models.Receipt, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	if req.Amount <= 0 {
		return nil, billing.ErrAmountNotPositive
	}
	now := uc.now()
	if req.Date.After(now) {
		return nil, billing.ErrDateInFuture
	}
	if _, err := uc.repo.GetReceiptType(ctx, req.TypeID); err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		ID:        uuid.New(),
		Date:      req.Date,
		TypeID:    req.TypeID,
		Amount:    req.Amount,
		Comment:   req.Comment,
		GroupID:   *session.GroupID,
		DriverID:  session.UserID,
		CreatedAt: now,
	}

	if err := uc.repo.CreateReceipt(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	if err := uc.gw.PublishReceiptCreated(ctx, receipt); err != nil {
		logger.Warn("Failed to publish receipt created event", logger.Err(err))
	}

	return receipt, nil
}

// ListReceipts returns the receipts of the caller's group, newest first.
func (uc *billingUC) ListReceipts(ctx context.Context, session *models.Session) ([]*models.Receipt, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	return uc.repo.ListReceipts(ctx, *session.GroupID)
}

// DeleteReceipt removes a receipt. The creator may delete within 24 hours
// of creation; an admin anytime. Checked before the write.
func (uc *billingUC) DeleteReceipt(ctx context.Context, session *models.Session, receiptID uuid.UUID) error {
	receipt, err := uc.repo.GetReceipt(ctx, receiptID)
	if err != nil {
		return err
	}

	if !session.Capabilities.DeleteAnyReceipt {
		if receipt.DriverID != session.UserID {
			return billing.ErrNotReceiptOwner
		}
		if uc.now().Sub(receipt.CreatedAt) > receiptDeleteWindow {
			return billing.ErrDeleteWindowExpired
		}
	}

	if err := uc.repo.DeleteReceipt(ctx, receiptID); err != nil {
		return err
	}

	uc.invalidate(ctx, receipt.GroupID)
	return nil
}

// CreateReceiptType adds a new category for receipts.
func (uc *billingUC) CreateReceiptType(ctx context.Context, session *models.Session, req models.ReceiptTypeRequest) (*models.ReceiptType, error) {
	if !session.Capabilities.ManageReceiptTypes {
		return nil, billing.ErrForbidden
	}
	if req.Label == "" {
		return nil, billing.ErrLabelRequired
	}

	rt := &models.ReceiptType{
		ID:          uuid.New(),
		Label:       req.Label,
		Description: req.Description,
		Active:      true,
		SortOrder:   req.SortOrder,
	}

	if err := uc.repo.CreateReceiptType(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to create receipt type: %w", err)
	}

	return rt, nil
}

// ListReceiptTypes returns the receipt categories. Members only see active
// ones; type managers also see deactivated types.
func (uc *billingUC) ListReceiptTypes(ctx context.Context, session *models.Session) ([]*models.ReceiptType, error) {
	return uc.repo.ListReceiptTypes(ctx, session.Capabilities.ManageReceiptTypes)
}

// UpdateReceiptType edits label, description and sort order.
func (uc *billingUC) UpdateReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID, req models.ReceiptTypeRequest) (*models.ReceiptType, error) {
	if !session.Capabilities.ManageReceiptTypes {
		return nil, billing.ErrForbidden
	}
	if req.Label == "" {
		return nil, billing.ErrLabelRequired
	}

	rt, err := uc.repo.GetReceiptType(ctx, typeID)
	if err != nil {
		return nil, err
	}

	rt.Label = req.Label
	rt.Description = req.Description
	rt.SortOrder = req.SortOrder

	if err := uc.repo.UpdateReceiptType(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to update receipt type: %w", err)
	}

	return rt, nil
}

// DeactivateReceiptType soft-deletes a category: it disappears from the
// picker but existing receipts keep a valid reference.
func (uc *billingUC) DeactivateReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID) error {
	if !session.Capabilities.ManageReceiptTypes {
		return billing.ErrForbidden
	}
	return uc.repo.SetReceiptTypeActive(ctx, typeID, false)
}

// DeleteReceiptType hard-deletes a category, refused once any receipt
// references it. Clients fall back to DeactivateReceiptType in that case.
func (uc *billingUC) DeleteReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID) error {
	if !session.Capabilities.ManageReceiptTypes {
		return billing.ErrForbidden
	}

	inUse, err := uc.repo.ReceiptTypeInUse(ctx, typeID)
	if err != nil {
		return err
	}
	if inUse {
		return billing.ErrTypeInUse
	}

	return uc.repo.DeleteReceiptType(ctx, typeID)
}

// GetGroupCosts returns the caller's group cost summary, cache-first.
func (uc *billingUC) GetGroupCosts(ctx context.Context, session *models.Session) (*models.GroupCosts, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	groupID := *session.GroupID

	if cached, err := uc.cache.GetGroupCosts(ctx, groupID); err == nil && cached != nil {
		return cached, nil
	}

	costs, err := uc.repo.GetGroupCosts(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute group costs: %w", err)
	}

	if err := uc.cache.SetGroupCosts(ctx, costs); err != nil {
		logger.Warn("Failed to cache group costs", logger.Err(err))
	}

	return costs, nil
}

// GetDriverCosts returns the per-driver summaries of the caller's group.
func (uc *billingUC) GetDriverCosts(ctx context.Context, session *models.Session) ([]*models.DriverCosts, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	groupID := *session.GroupID

	if cached, err := uc.cache.GetDriverCosts(ctx, groupID); err == nil && cached != nil {
		return cached, nil
	}

	costs, err := uc.repo.GetDriverCosts(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute driver costs: %w", err)
	}

	if err := uc.cache.SetDriverCosts(ctx, groupID, costs); err != nil {
		logger.Warn("Failed to cache driver costs", logger.Err(err))
	}

	return costs, nil
}

// GetGroupAccount returns the balance and transaction rows of the group.
// Not cached: the statement is read rarely and must be current.
func (uc *billingUC) GetGroupAccount(ctx context.Context, session *models.Session) (*models.GroupAccount, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	return uc.repo.GetGroupAccount(ctx, *session.GroupID)
}

// RecordSettlement books the amount paid through the checkout screen as a
// receipt of the configured settlement type.
func (uc *billingUC) RecordSettlement(ctx context.Context, session *models.Session, result models.CheckoutResult) (*models.Receipt, error) {
	if session.GroupID == nil {
		return nil, billing.ErrNoGroup
	}
	if result.Amount <= 0 {
		return nil, billing.ErrAmountNotPositive
	}

	settlementType, err := uc.repo.GetReceiptTypeByLabel(ctx, uc.cfg.Billing.SettlementTypeLabel)
	if err != nil {
		return nil, billing.ErrSettlementTypeMissing
	}

	now := uc.now()
	receipt := &models.Receipt{
		ID:        uuid.New(),
		Date:      now,
		TypeID:    settlementType.ID,
		Amount:    result.Amount,
		Comment:   result.Reference,
		GroupID:   *session.GroupID,
		DriverID:  session.UserID,
		CreatedAt: now,
	}

	if err := uc.repo.CreateReceipt(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}

	if err := uc.gw.PublishReceiptCreated(ctx, receipt); err != nil {
		logger.Warn("Failed to publish receipt created event", logger.Err(err))
	}

	return receipt, nil
}

// InvalidateCosts drops the cached summaries of a group.
func (uc *billingUC) InvalidateCosts(ctx context.Context, groupID uuid.UUID) error {
	return uc.cache.Invalidate(ctx, groupID)
}

func (uc *billingUC) invalidate(ctx context.Context, groupID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, groupID); err != nil {
		logger.Warn("Failed to invalidate cost cache",
			logger.String("group_id", groupID.String()),
			logger.Err(err))
	}
}
