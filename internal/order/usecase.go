package order

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/pkg/errors"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("order: cart is empty")

// CheckoutInput is what the storefront collects before handing the cart to
// the upstream order endpoint.
type CheckoutInput struct {
	ShippingAddress map[string]string `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes,omitempty"`
}

// UseCase forwards order operations upstream on behalf of the session user.
// Checkout builds the order from the session cart and clears the cart
// exactly when the upstream accepts the order.
type UseCase interface {
	Checkout(ctx context.Context, creds commerce.Credentials, sessionCart cart.UseCase, input *CheckoutInput) (*model.Order, error)
	ListUserOrders(ctx context.Context, creds commerce.Credentials) ([]model.Order, error)
	GetOrder(ctx context.Context, creds commerce.Credentials, id string) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, creds commerce.Credentials, number string) (*model.Order, error)
	PresignUpload(ctx context.Context, creds commerce.Credentials, filename, contentType string) (string, error)
}
