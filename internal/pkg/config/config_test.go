package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_NAME", "carshare-test")
	t.Setenv("SERVER_PORT", "8123")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BILLING_FALLBACK_RATE_PER_KM", "0.42")
	t.Setenv("BILLING_SETTLEMENT_TYPE_LABEL", "Deposit")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "carshare-test", cfg.App.Name)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.InDelta(t, 0.42, cfg.Billing.FallbackRatePerKm, 1e-9)
	assert.Equal(t, "Deposit", cfg.Billing.SettlementTypeLabel)
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("BILLING_FALLBACK_RATE_PER_KM", "")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.InDelta(t, 0.30, cfg.Billing.FallbackRatePerKm, 1e-9)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")

	assert.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
}
