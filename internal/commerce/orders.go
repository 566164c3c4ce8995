package commerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type CreateOrderInput struct {
	Items           []model.OrderItem `json:"items"`
	ShippingAddress map[string]string `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, creds Credentials, input *CreateOrderInput) (*model.Order, error) {
	var out struct {
		Order model.Order `json:"order"`
	}
	if err := c.do(ctx, creds, http.MethodPost, "/orders", input, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *Client) ListUserOrders(ctx context.Context, creds Credentials) ([]model.Order, error) {
	var out struct {
		Orders []model.Order `json:"orders"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, creds Credentials, id string) (*model.Order, error) {
	var out struct {
		Order model.Order `json:"order"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *Client) GetOrderByNumber(ctx context.Context, creds Credentials, number string) (*model.Order, error) {
	var out struct {
		Order model.Order `json:"order"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/orders/number/"+url.PathEscape(number), nil, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}
