package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type catalogUseCase struct {
	client *commerce.Client
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewCatalogUseCase(client *commerce.Client, cache *cache.RedisClient, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		client: client,
		cache:  cache,
		logger: log,
	}
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, creds commerce.Credentials, filters *commerce.ProductFilters) ([]model.Product, int, error) {
	cacheKey, keyErr := uc.generateCacheKey(creds.Locale(), filters)
	if keyErr == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				// Cache Hit
				return result.Products, result.Count, nil
			}
		}
	}

	products, count, err := uc.client.ListProducts(ctx, creds, filters)
	if err != nil {
		return nil, 0, err
	}

	if keyErr == nil && uc.cache != nil {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			if err := uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL).Err(); err != nil {
				uc.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return products, count, nil
}

func (uc *catalogUseCase) generateCacheKey(locale string, filters *commerce.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:list:%s:%x", locale, md5.Sum(data)), nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, creds commerce.Credentials, id string) (*model.Product, error) {
	return uc.client.GetProduct(ctx, creds, id)
}

func (uc *catalogUseCase) GetProductBySlug(ctx context.Context, creds commerce.Credentials, slug string) (*model.Product, error) {
	return uc.client.GetProductBySlug(ctx, creds, slug)
}

func (uc *catalogUseCase) SearchProducts(ctx context.Context, creds commerce.Credentials, query string, page, pageSize int) ([]model.Product, int, error) {
	// Search results are not cached; queries have long tails and the
	// upstream already ranks them.
	return uc.client.SearchProducts(ctx, creds, query, page, pageSize)
}

func (uc *catalogUseCase) ListCategories(ctx context.Context, creds commerce.Credentials) ([]model.Category, error) {
	return uc.client.ListCategories(ctx, creds)
}

func (uc *catalogUseCase) ListBrands(ctx context.Context, creds commerce.Credentials) ([]model.Brand, error) {
	return uc.client.ListBrands(ctx, creds)
}
