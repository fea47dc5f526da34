package property

import (
	"context"
	"encoding/json"
	"time"

	"cleanquote/models"

	"github.com/go-redis/redis/v8"
)

const propertyCachePrefix = "property:"

// Cache stores property details per source and address.
type Cache interface {
	Get(ctx context.Context, key string) (*models.PropertyDetails, bool, error)
	Set(ctx context.Context, key string, details *models.PropertyDetails) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.PropertyDetails, bool, error) {
	data, err := c.client.Get(ctx, propertyCachePrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var details models.PropertyDetails
	if err := json.Unmarshal([]byte(data), &details); err != nil {
		return nil, false, err
	}
	return &details, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, details *models.PropertyDetails) error {
	b, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, propertyCachePrefix+key, b, c.ttl).Err()
}
