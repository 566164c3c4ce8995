package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// UseCase is a read-through proxy over the upstream catalog, with short-TTL
// caching on the list endpoints.
type UseCase interface {
	ListProducts(ctx context.Context, creds commerce.Credentials, filters *commerce.ProductFilters) ([]model.Product, int, error)
	GetProduct(ctx context.Context, creds commerce.Credentials, id string) (*model.Product, error)
	GetProductBySlug(ctx context.Context, creds commerce.Credentials, slug string) (*model.Product, error)
	SearchProducts(ctx context.Context, creds commerce.Credentials, query string, page, pageSize int) ([]model.Product, int, error)
	ListCategories(ctx context.Context, creds commerce.Credentials) ([]model.Category, error)
	ListBrands(ctx context.Context, creds commerce.Credentials) ([]model.Brand, error)
}
