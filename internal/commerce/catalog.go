package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// ProductFilters mirrors the upstream list query parameters.
type ProductFilters struct {
	CategorySlug string `json:"category_slug,omitempty"`
	BrandSlug    string `json:"brand_slug,omitempty"`
	SearchQuery  string `json:"search_query,omitempty"`
	Featured     bool   `json:"featured,omitempty"`
	New          bool   `json:"new,omitempty"`
	SortBy       string `json:"sort_by,omitempty"`
	SortOrder    string `json:"sort_order,omitempty"`
	Page         int    `json:"page,omitempty"`
	PageSize     int    `json:"page_size,omitempty"`
}

func (f *ProductFilters) query() string {
	q := url.Values{}
	if f.CategorySlug != "" {
		q.Set("category", f.CategorySlug)
	}
	if f.BrandSlug != "" {
		q.Set("brand", f.BrandSlug)
	}
	if f.SearchQuery != "" {
		q.Set("q", f.SearchQuery)
	}
	if f.Featured {
		q.Set("featured", "true")
	}
	if f.New {
		q.Set("new", "true")
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
		q.Set("sort_order", f.SortOrder)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

type productList struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

func (c *Client) ListProducts(ctx context.Context, creds Credentials, filters *ProductFilters) ([]model.Product, int, error) {
	var out productList
	if err := c.do(ctx, creds, http.MethodGet, "/products"+filters.query(), nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Products, out.Total, nil
}

func (c *Client) GetProduct(ctx context.Context, creds Credentials, id string) (*model.Product, error) {
	var out struct {
		Product model.Product `json:"product"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) GetProductBySlug(ctx context.Context, creds Credentials, slug string) (*model.Product, error) {
	var out struct {
		Product model.Product `json:"product"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/products/slug/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) SearchProducts(ctx context.Context, creds Credentials, query string, page, pageSize int) ([]model.Product, int, error) {
	return c.ListProducts(ctx, creds, &ProductFilters{SearchQuery: query, Page: page, PageSize: pageSize})
}

func (c *Client) ListCategories(ctx context.Context, creds Credentials) ([]model.Category, error) {
	var out struct {
		Categories []model.Category `json:"categories"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) ListBrands(ctx context.Context, creds Credentials) ([]model.Brand, error) {
	var out struct {
		Brands []model.Brand `json:"brands"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/brands", nil, &out); err != nil {
		return nil, err
	}
	return out.Brands, nil
}

// PresignUpload asks the upstream for a presigned URL the browser can PUT a
// file to directly.
func (c *Client) PresignUpload(ctx context.Context, creds Credentials, filename, contentType string) (string, error) {
	body := map[string]string{"filename": filename, "content_type": contentType}
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, creds, http.MethodPost, "/uploads/presign", body, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("commerce: upstream returned empty upload url")
	}
	return out.URL, nil
}
