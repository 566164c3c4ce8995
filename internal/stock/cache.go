package stock

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// stockTTL bounds how long a stale stock level can influence validation
// when the event stream goes quiet.
const stockTTL = 30 * time.Minute

// RedisCache holds the most recent stock level per variant as published on
// the inventory event stream.
type RedisCache struct {
	client *cache.RedisClient
	logger logger.ZapLogger
}

func NewRedisCache(client *cache.RedisClient, log logger.ZapLogger) *RedisCache {
	return &RedisCache{client: client, logger: log}
}

func key(productID, variantID string) string {
	return fmt.Sprintf("stock:%s:%s", productID, variantID)
}

func (c *RedisCache) Stock(ctx context.Context, productID, variantID string) (int, bool) {
	val, err := c.client.Client.Get(ctx, key(productID, variantID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stock cache read failed", zap.Error(err))
		}
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (c *RedisCache) SetStock(ctx context.Context, productID, variantID string, stock int) error {
	return c.client.Client.Set(ctx, key(productID, variantID), stock, stockTTL).Err()
}
