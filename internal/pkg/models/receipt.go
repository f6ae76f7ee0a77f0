package models

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is a logged reimbursable payment toward a group's shared balance.
type Receipt struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Date      time.Time `json:"date" db:"date"`
	TypeID    uuid.UUID `json:"type_id" db:"type_id"`
	Amount    float64   `json:"amount" db:"amount"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReceiptType categorizes receipts. Types are soft-deactivated, never hard
// deleted, so existing receipts keep a valid reference.
type ReceiptType struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Label       string    `json:"label" db:"label"`
	Description string    `json:"description,omitempty" db:"description"`
	Active      bool      `json:"active" db:"active"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
}

// ReceiptRequest creates a receipt
type ReceiptRequest struct {
	Date    time.Time `json:"date"`
	TypeID  uuid.UUID `json:"type_id"`
	Amount  float64   `json:"amount"`
	Comment string    `json:"comment"`
}

// ReceiptTypeRequest creates or updates a receipt type
type ReceiptTypeRequest struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// CheckoutResult is the payload of the checkout success callback. The
// settlement amount becomes a receipt row credited to the paying driver.
type CheckoutResult struct {
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}
