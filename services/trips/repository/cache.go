package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/database"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
)

// ActiveTripCache mirrors the open active trip in redis. Postgres remains
// the source of truth; every operation here is best effort.
type ActiveTripCache struct {
	redis *database.RedisClient
}

// NewActiveTripCache creates a new active trip cache
func NewActiveTripCache(redisClient *database.RedisClient) *ActiveTripCache {
	return &ActiveTripCache{redis: redisClient}
}

// SetActiveTrip stores the open trip under the shared cache key
func (c *ActiveTripCache) SetActiveTrip(ctx context.Context, trip *models.ActiveTrip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, constants.KeyActiveTrip, data, constants.ActiveTripTTL)
}

// GetActiveTrip returns the cached open trip, or nil on a cache miss
func (c *ActiveTripCache) GetActiveTrip(ctx context.Context) (*models.ActiveTrip, error) {
	data, err := c.redis.Get(ctx, constants.KeyActiveTrip)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	trip := &models.ActiveTrip{}
	if err := json.Unmarshal([]byte(data), trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// ClearActiveTrip removes the cached open trip
func (c *ActiveTripCache) ClearActiveTrip(ctx context.Context) error {
	return c.redis.Delete(ctx, constants.KeyActiveTrip)
}
