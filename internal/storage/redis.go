package storage

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "storefront:state:"

// Redis is the primary persistent Store. Errors are logged and swallowed per
// the Store contract.
type Redis struct {
	client *cache.RedisClient
	logger logger.ZapLogger
}

func NewRedis(client *cache.RedisClient, log logger.ZapLogger) *Redis {
	return &Redis{client: client, logger: log}
}

func (r *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := r.client.Client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("storage: redis get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		r.logger.Warn("storage: corrupt value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("storage: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Client.Set(ctx, redisKeyPrefix+key, raw, 0).Err(); err != nil {
		r.logger.Warn("storage: redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Remove(ctx context.Context, key string) {
	if err := r.client.Client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		r.logger.Warn("storage: redis del failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Clear(ctx context.Context) {
	keys, err := r.client.Client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		r.logger.Warn("storage: redis keys scan failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
			r.logger.Warn("storage: redis clear failed", zap.Error(err))
		}
	}
}
