package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// BillingRepo defines the interface for receipt and cost data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fahrtenbuch/backend/services/billing BillingRepo
type BillingRepo interface {
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
	GetReceipt(ctx context.Context, id uuid.UUID) (*models.Receipt, error)
	ListReceipts(ctx context.Context, groupID uuid.UUID) ([]*models.Receipt, error)
	DeleteReceipt(ctx context.Context, id uuid.UUID) error

	CreateReceiptType(ctx context.Context, rt *models.ReceiptType) error
	GetReceiptTypeByLabel(ctx context.Context, label string) (*models.ReceiptType, error)
	ListReceiptTypes(ctx context.Context, includeInactive bool) ([]*models.ReceiptType, error)
	UpdateReceiptType(ctx context.Context, rt *models.ReceiptType) error
	// SetReceiptTypeActive flips the active flag; types are never hard
	// deleted once a receipt references them.
	SetReceiptTypeActive(ctx context.Context, id uuid.UUID, active bool) error
	ReceiptTypeInUse(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteReceiptType(ctx context.Context, id uuid.UUID) error
	GetReceiptType(ctx context.Context, id uuid.UUID) (*models.ReceiptType, error)

	GetGroupCosts(ctx context.Context, groupID uuid.UUID) (*models.GroupCosts, error)
	GetDriverCosts(ctx context.Context, groupID uuid.UUID) ([]*models.DriverCosts, error)
	GetGroupAccount(ctx context.Context, groupID uuid.UUID) (*models.GroupAccount, error)
}

// BillingUC defines the interface for the billing business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fahrtenbuch/backend/services/billing BillingUC
type BillingUC interface {
	CreateReceipt(ctx context.Context, session *models.Session, req models.ReceiptRequest) (*models.Receipt, error)
	ListReceipts(ctx context.Context, session *models.Session) ([]*models.Receipt, error)
	DeleteReceipt(ctx context.Context, session *models.Session, receiptID uuid.UUID) error

	CreateReceiptType(ctx context.Context, session *models.Session, req models.ReceiptTypeRequest) (*models.ReceiptType, error)
	ListReceiptTypes(ctx context.Context, session *models.Session) ([]*models.ReceiptType, error)
	UpdateReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID, req models.ReceiptTypeRequest) (*models.ReceiptType, error)
	DeactivateReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID) error
	DeleteReceiptType(ctx context.Context, session *models.Session, typeID uuid.UUID) error

	GetGroupCosts(ctx context.Context, session *models.Session) (*models.GroupCosts, error)
	GetDriverCosts(ctx context.Context, session *models.Session) ([]*models.DriverCosts, error)
	GetGroupAccount(ctx context.Context, session *models.Session) (*models.GroupAccount, error)

	// RecordSettlement books a checkout settlement as a receipt row of the
	// configured settlement type.
	RecordSettlement(ctx context.Context, session *models.Session, result models.CheckoutResult) (*models.Receipt, error)

	// InvalidateCosts drops cached cost summaries for a group. Called by
	// the NATS consumer when trips or receipts change.
	InvalidateCosts(ctx context.Context, groupID uuid.UUID) error
}

// BillingGW defines the interface for billing event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fahrtenbuch/backend/services/billing BillingGW,CostsCache
type BillingGW interface {
	PublishReceiptCreated(ctx context.Context, receipt *models.Receipt) error
}

// CostsCache caches cost summaries per group. Best effort: SQL aggregates
// stay the source of truth.
type CostsCache interface {
	GetGroupCosts(ctx context.Context, groupID uuid.UUID) (*models.GroupCosts, error)
	SetGroupCosts(ctx context.Context, costs *models.GroupCosts) error
	GetDriverCosts(ctx context.Context, groupID uuid.UUID) ([]*models.DriverCosts, error)
	SetDriverCosts(ctx context.Context, groupID uuid.UUID, costs []*models.DriverCosts) error
	Invalidate(ctx context.Context, groupID uuid.UUID) error
}
