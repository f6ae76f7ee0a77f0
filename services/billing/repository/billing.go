package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/billing"
)

// BillingRepo implements the billing.BillingRepo interface
type BillingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBillingRepo creates a new billing repository
func NewBillingRepo(cfg *models.Config, db *sqlx.DB) *BillingRepo {
	return &BillingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateReceipt inserts a new receipt
func (r *BillingRepo) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	query := `
		INSERT INTO receipts (id, date, type_id, amount, comment, group_id, driver_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.Date,
		receipt.TypeID,
		receipt.Amount,
		receipt.Comment,
		receipt.GroupID,
		receipt.DriverID,
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	return nil
}

// GetReceipt fetches a single receipt by ID
func (r *BillingRepo) GetReceipt(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	var receipt models.Receipt
	query := `
		SELECT id, date, type_id, amount, comment, group_id, driver_id, created_at
		FROM receipts
		WHERE id = $1`

	err := r.db.GetContext(ctx, &receipt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return &receipt, nil
}

// ListReceipts returns the receipts of a group, newest first
func (r *BillingRepo) ListReceipts(ctx context.Context, groupID uuid.UUID) ([]*models.Receipt, error) {
	list := []*models.Receipt{}
	query := `
		SELECT id, date, type_id, amount, comment, group_id, driver_id, created_at
		FROM receipts
		WHERE group_id = $1
		ORDER BY date DESC, created_at DESC`

	if err := r.db.SelectContext(ctx, &list, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return list, nil
}

// DeleteReceipt removes a receipt
func (r *BillingRepo) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return billing.ErrReceiptNotFound
	}

	return nil
}

// CreateReceiptType inserts a new receipt category
func (r *BillingRepo) CreateReceiptType(ctx context.Context, rt *models.ReceiptType) error {
	query := `
		INSERT INTO receipt_types (id, label, description, active, sort_order)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.Label, rt.Description, rt.Active, rt.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert receipt type: %w", err)
	}

	return nil
}

// GetReceiptType fetches a receipt category by ID
func (r *BillingRepo) GetReceiptType(ctx context.Context, id uuid.UUID) (*models.ReceiptType, error) {
	var rt models.ReceiptType
	query := `SELECT id, label, description, active, sort_order FROM receipt_types WHERE id = $1`

	err := r.db.GetContext(ctx, &rt, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrTypeNotFound
		}
		return nil, fmt.Errorf("failed to get receipt type: %w", err)
	}

	return &rt, nil
}

// GetReceiptTypeByLabel fetches an active receipt category by its label
func (r *BillingRepo) GetReceiptTypeByLabel(ctx context.Context, label string) (*models.ReceiptType, error) {
	var rt models.ReceiptType
	query := `SELECT id, label, description, active, sort_order FROM receipt_types WHERE label = $1 AND active`

	err := r.db.GetContext(ctx, &rt, query, label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrTypeNotFound
		}
		return nil, fmt.Errorf("failed to get receipt type by label: %w", err)
	}

	return &rt, nil
}

// ListReceiptTypes returns receipt categories ordered for the picker
func (r *BillingRepo) ListReceiptTypes(ctx context.Context, includeInactive bool) ([]*models.ReceiptType, error) {
	list := []*models.ReceiptType{}
	query := `
		SELECT id, label, description, active, sort_order
		FROM receipt_types
		WHERE active OR $1
		ORDER BY sort_order ASC, label ASC`

	if err := r.db.SelectContext(ctx, &list, query, includeInactive); err != nil {
		return nil, fmt.Errorf("failed to list receipt types: %w", err)
	}

	return list, nil
}

// UpdateReceiptType rewrites label, description and sort order
func (r *BillingRepo) UpdateReceiptType(ctx context.Context, rt *models.ReceiptType) error {
	query := `
		UPDATE receipt_types
		SET label = $1, description = $2, sort_order = $3
		WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, rt.Label, rt.Description, rt.SortOrder, rt.ID)
	if err != nil {
		return fmt.Errorf("failed to update receipt type: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return billing.ErrTypeNotFound
	}

	return nil
}

// SetReceiptTypeActive flips the active flag
func (r *BillingRepo) SetReceiptTypeActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE receipt_types SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set receipt type active flag: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return billing.ErrTypeNotFound
	}

	return nil
}

// ReceiptTypeInUse reports whether any receipt references the type
func (r *BillingRepo) ReceiptTypeInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var inUse bool
	query := `SELECT EXISTS (SELECT 1 FROM receipts WHERE type_id = $1)`

	if err := r.db.GetContext(ctx, &inUse, query, id); err != nil {
		return false, fmt.Errorf("failed to check receipt type usage: %w", err)
	}

	return inUse, nil
}

// DeleteReceiptType removes an unreferenced receipt category
func (r *BillingRepo) DeleteReceiptType(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM receipt_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt type: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return billing.ErrTypeNotFound
	}

	return nil
}

// GetGroupCosts aggregates kilometers, kilometer charges and receipts for
// one group. Trip costs are summed as stored; the rate at creation time
// counts, not the current one.
func (r *BillingRepo) GetGroupCosts(ctx context.Context, groupID uuid.UUID) (*models.GroupCosts, error) {
	var costs models.GroupCosts
	query := `
		SELECT g.id AS group_id,
		       g.name AS group_name,
		       COALESCE((SELECT SUM(t.end_km - t.start_km) FROM trips t WHERE t.group_id = g.id), 0) AS total_km,
		       COALESCE((SELECT SUM(t.cost) FROM trips t WHERE t.group_id = g.id), 0) AS km_cost,
		       COALESCE((SELECT SUM(rc.amount) FROM receipts rc WHERE rc.group_id = g.id), 0) AS receipts_total
		FROM groups g
		WHERE g.id = $1`

	if err := r.db.GetContext(ctx, &costs, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to aggregate group costs: %w", err)
	}

	return &costs, nil
}

// GetDriverCosts aggregates per-driver kilometers, charges and receipts
// within a group. Unclaimed trips have no driver and are excluded here;
// they still count toward the group totals.
func (r *BillingRepo) GetDriverCosts(ctx context.Context, groupID uuid.UUID) ([]*models.DriverCosts, error) {
	list := []*models.DriverCosts{}
	query := `
		SELECT u.id AS driver_id,
		       TRIM(u.first_name || ' ' || u.last_name) AS driver_name,
		       COALESCE((SELECT SUM(t.end_km - t.start_km) FROM trips t WHERE t.driver_id = u.id AND t.group_id = $1), 0) AS total_km,
		       COALESCE((SELECT SUM(t.cost) FROM trips t WHERE t.driver_id = u.id AND t.group_id = $1), 0) AS km_cost,
		       COALESCE((SELECT SUM(rc.amount) FROM receipts rc WHERE rc.driver_id = u.id AND rc.group_id = $1), 0) AS receipts_total
		FROM users u
		WHERE u.group_id = $1
		ORDER BY driver_name ASC`

	if err := r.db.SelectContext(ctx, &list, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to aggregate driver costs: %w", err)
	}

	return list, nil
}

// GetGroupAccount returns the group's balance plus the transaction rows
// behind it: trips as charges, receipts as credits, newest first.
func (r *BillingRepo) GetGroupAccount(ctx context.Context, groupID uuid.UUID) (*models.GroupAccount, error) {
	entries := []models.AccountEntry{}
	query := `
		SELECT t.date,
		       'trip' AS kind,
		       -t.cost AS amount,
		       (t.start_km || ' - ' || t.end_km || ' km') AS detail,
		       COALESCE(TRIM(u.first_name || ' ' || u.last_name), '') AS driver_name
		FROM trips t
		LEFT JOIN users u ON u.id = t.driver_id
		WHERE t.group_id = $1
		UNION ALL
		SELECT rc.date,
		       'receipt' AS kind,
		       rc.amount,
		       rc.comment AS detail,
		       COALESCE(TRIM(u.first_name || ' ' || u.last_name), '') AS driver_name
		FROM receipts rc
		LEFT JOIN users u ON u.id = rc.driver_id
		WHERE rc.group_id = $1
		ORDER BY date DESC`

	if err := r.db.SelectContext(ctx, &entries, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to load group account: %w", err)
	}

	account := &models.GroupAccount{
		GroupID: groupID,
		Entries: entries,
	}
	for _, entry := range entries {
		account.Balance += entry.Amount
	}

	return account, nil
}
