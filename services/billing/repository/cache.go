package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/database"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// CostsCache implements the billing.CostsCache interface on redis
type CostsCache struct {
	redisClient *database.RedisClient
}

// NewCostsCache creates a new cost summary cache
func NewCostsCache(redisClient *database.RedisClient) *CostsCache {
	return &CostsCache{redisClient: redisClient}
}

// GetGroupCosts returns the cached group summary, nil on miss
func (c *CostsCache) GetGroupCosts(ctx context.Context, groupID uuid.UUID) (*models.GroupCosts, error) {
	data, err := c.redisClient.Get(ctx, constants.KeyGroupCostsPrefix+groupID.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached group costs: %w", err)
	}

	var costs models.GroupCosts
	if err := json.Unmarshal([]byte(data), &costs); err != nil {
		return nil, fmt.Errorf("failed to decode cached group costs: %w", err)
	}

	return &costs, nil
}

// SetGroupCosts stores the group summary
func (c *CostsCache) SetGroupCosts(ctx context.Context, costs *models.GroupCosts) error {
	data, err := json.Marshal(costs)
	if err != nil {
		return fmt.Errorf("failed to encode group costs: %w", err)
	}

	return c.redisClient.Set(ctx, constants.KeyGroupCostsPrefix+costs.GroupID.String(), data, constants.CostsTTL)
}

// GetDriverCosts returns the cached per-driver summaries, nil on miss
func (c *CostsCache) GetDriverCosts(ctx context.Context, groupID uuid.UUID) ([]*models.DriverCosts, error) {
	data, err := c.redisClient.Get(ctx, constants.KeyDriverCostsPrefix+groupID.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached driver costs: %w", err)
	}

	var costs []*models.DriverCosts
	if err := json.Unmarshal([]byte(data), &costs); err != nil {
		return nil, fmt.Errorf("failed to decode cached driver costs: %w", err)
	}

	return costs, nil
}

// SetDriverCosts stores the per-driver summaries
func (c *CostsCache) SetDriverCosts(ctx context.Context, groupID uuid.UUID, costs []*models.DriverCosts) error {
	data, err := json.Marshal(costs)
	if err != nil {
		return fmt.Errorf("failed to encode driver costs: %w", err)
	}

	return c.redisClient.Set(ctx, constants.KeyDriverCostsPrefix+groupID.String(), data, constants.CostsTTL)
}

// Invalidate drops both summaries of a group
func (c *CostsCache) Invalidate(ctx context.Context, groupID uuid.UUID) error {
	return c.redisClient.Delete(ctx,
		constants.KeyGroupCostsPrefix+groupID.String(),
		constants.KeyDriverCostsPrefix+groupID.String(),
	)
}
