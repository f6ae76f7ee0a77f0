package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/database"
)

// RateCache implements the settings.RateCache interface on redis
type RateCache struct {
	redisClient *database.RedisClient
}

// NewRateCache creates a new rate cache
func NewRateCache(redisClient *database.RedisClient) *RateCache {
	return &RateCache{redisClient: redisClient}
}

// GetRate returns the cached rate; the second return is false on miss
func (c *RateCache) GetRate(ctx context.Context) (float64, bool, error) {
	data, err := c.redisClient.Get(ctx, constants.KeyRatePerKm)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read cached rate: %w", err)
	}

	rate, err := strconv.ParseFloat(data, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached rate: %w", err)
	}

	return rate, true, nil
}

// SetRate stores the rate with a short TTL
func (c *RateCache) SetRate(ctx context.Context, rate float64) error {
	return c.redisClient.Set(ctx, constants.KeyRatePerKm,
		strconv.FormatFloat(rate, 'f', -1, 64), constants.RatePerKmTTL)
}

// ClearRate drops the cached rate, forcing a re-read of the setting
func (c *RateCache) ClearRate(ctx context.Context) error {
	return c.redisClient.Delete(ctx, constants.KeyRatePerKm)
}
