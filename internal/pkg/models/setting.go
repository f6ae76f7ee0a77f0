package models

import (
	"time"

	"github.com/google/uuid"
)

// Well-known setting keys
const (
	SettingCostPerKm     = "cost_per_km"
	SettingPayPalContact = "paypal_contact"
)

// Setting is an audited key/value pair. UpdatedBy records which profile
// changed the value last.
type Setting struct {
	Key       string     `json:"key" db:"key"`
	Value     string     `json:"value" db:"value"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty" db:"updated_by"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// SettingRequest updates a setting value
type SettingRequest struct {
	Value string `json:"value"`
}

// VersionInfo describes the deployed build, served at /version
type VersionInfo struct {
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	ServerTime  time.Time `json:"server_time"`
}
