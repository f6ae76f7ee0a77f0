package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupCosts is the aggregate cost summary of one group: kilometers driven,
// the resulting charges and the receipts paid in. Computed in SQL, read-only.
type GroupCosts struct {
	GroupID       uuid.UUID `json:"group_id" db:"group_id"`
	GroupName     string    `json:"group_name" db:"group_name"`
	TotalKm       int       `json:"total_km" db:"total_km"`
	KmCost        float64   `json:"km_cost" db:"km_cost"`
	ReceiptsTotal float64   `json:"receipts_total" db:"receipts_total"`
}

// Balance is receipts paid minus kilometer charges owed.
func (g *GroupCosts) Balance() float64 {
	return g.ReceiptsTotal - g.KmCost
}

// DriverCosts is the per-driver aggregate within a group.
type DriverCosts struct {
	DriverID      uuid.UUID `json:"driver_id" db:"driver_id"`
	DriverName    string    `json:"driver_name" db:"driver_name"`
	TotalKm       int       `json:"total_km" db:"total_km"`
	KmCost        float64   `json:"km_cost" db:"km_cost"`
	ReceiptsTotal float64   `json:"receipts_total" db:"receipts_total"`
}

// AccountEntry is one transaction row of a group's account statement.
type AccountEntry struct {
	Date       time.Time `json:"date" db:"date"`
	Kind       string    `json:"kind" db:"kind"` // "trip" or "receipt"
	Amount     float64   `json:"amount" db:"amount"`
	Detail     string    `json:"detail" db:"detail"`
	DriverName string    `json:"driver_name" db:"driver_name"`
}

// GroupAccount is the balance plus transaction history of one group.
type GroupAccount struct {
	GroupID uuid.UUID      `json:"group_id"`
	Balance float64        `json:"balance"`
	Entries []AccountEntry `json:"entries"`
}
