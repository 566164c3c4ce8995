package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type orderUseCase struct {
	client *commerce.Client
	logger logger.ZapLogger
}

func NewOrderUseCase(client *commerce.Client, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{client: client, logger: log}
}

func (uc *orderUseCase) Checkout(ctx context.Context, creds commerce.Credentials, sessionCart cart.UseCase, input *order.CheckoutInput) (*model.Order, error) {
	state := sessionCart.State()
	if len(state.Items) == 0 {
		return nil, order.ErrEmptyCart
	}

	items := make([]model.OrderItem, len(state.Items))
	for i, line := range state.Items {
		items[i] = model.OrderItem{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Variant.Price,
		}
	}

	created, err := uc.client.CreateOrder(ctx, creds, &commerce.CreateOrderInput{
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, err
	}

	// The cart is spent only once the upstream has accepted the order.
	sessionCart.Clear(ctx)
	uc.logger.Info("order created", zap.String("order_id", created.ID), zap.String("number", created.Number))
	return created, nil
}

func (uc *orderUseCase) ListUserOrders(ctx context.Context, creds commerce.Credentials) ([]model.Order, error) {
	return uc.client.ListUserOrders(ctx, creds)
}

func (uc *orderUseCase) GetOrder(ctx context.Context, creds commerce.Credentials, id string) (*model.Order, error) {
	return uc.client.GetOrder(ctx, creds, id)
}

func (uc *orderUseCase) GetOrderByNumber(ctx context.Context, creds commerce.Credentials, number string) (*model.Order, error) {
	return uc.client.GetOrderByNumber(ctx, creds, number)
}

func (uc *orderUseCase) PresignUpload(ctx context.Context, creds commerce.Credentials, filename, contentType string) (string, error) {
	return uc.client.PresignUpload(ctx, creds, filename, contentType)
}
