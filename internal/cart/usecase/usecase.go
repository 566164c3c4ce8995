package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/stock"
	"github.com/fekuna/omnipos-storefront-service/internal/toast"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

// cartUseCase validates mutations against variant stock, delegates to the
// base store only when valid, and hands notification events to the toaster.
// Stock validation lives here rather than in an optional wrapper so no code
// path can exceed stock by calling the store directly.
type cartUseCase struct {
	store   *cart.Store
	stocks  stock.Reader
	toaster *toast.Store
	logger  logger.ZapLogger
}

func NewCartUseCase(store *cart.Store, stocks stock.Reader, toaster *toast.Store, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		store:   store,
		stocks:  stocks,
		toaster: toaster,
		logger:  log,
	}
}

func (uc *cartUseCase) State() model.CartState {
	return uc.store.State()
}

// liveStock prefers the event-stream stock level over the snapshot the
// caller supplied; the snapshot may predate a sale in another session.
func (uc *cartUseCase) liveStock(ctx context.Context, productID, variantID string, snapshot int) int {
	if uc.stocks == nil {
		return snapshot
	}
	if n, ok := uc.stocks.Stock(ctx, productID, variantID); ok {
		return n
	}
	return snapshot
}

func (uc *cartUseCase) AddItem(ctx context.Context, product model.Product, variant model.Variant, quantity int, langs ...string) cart.ValidationResult {
	inCart := uc.store.ItemQuantity(product.ID, variant.ID)
	available := uc.liveStock(ctx, product.ID, variant.ID, variant.Stock)

	result := cart.Validate(available, inCart, quantity)
	if !result.IsValid {
		uc.logger.Debug("cart add rejected",
			zap.String("product_id", product.ID),
			zap.String("variant_id", variant.ID),
			zap.String("reason", string(result.Error.Type)),
		)
		uc.notifyInvalid(product, result, langs)
		return result
	}

	uc.store.AddItem(ctx, product, variant, quantity)
	uc.toaster.Notify(toast.Notification{
		Type:      model.ToastSuccess,
		TitleID:   "toast.cart.added.title",
		MessageID: "toast.cart.added.message",
		Data:      map[string]interface{}{"Product": product.Name, "Color": variant.Color},
	}, langs...)
	return result
}

func (uc *cartUseCase) UpdateQuantity(ctx context.Context, productID, variantID string, quantity int, langs ...string) cart.ValidationResult {
	// Zero and below means remove; that path needs no stock check.
	if quantity <= 0 {
		uc.RemoveItem(ctx, productID, variantID, langs...)
		return cart.ValidationResult{IsValid: true}
	}

	state := uc.store.State()
	i := state.Find(productID, variantID)
	if i < 0 {
		// Nothing to update. The base store treats this as a no-op and so
		// do we.
		return cart.ValidationResult{IsValid: true}
	}
	item := state.Items[i]

	// The new quantity replaces the line, so it is validated against the
	// full stock rather than added on top of the current cart quantity.
	available := uc.liveStock(ctx, productID, variantID, item.Variant.Stock)
	result := cart.Validate(available, 0, quantity)
	if !result.IsValid {
		uc.notifyInvalid(item.Product, result, langs)
		return result
	}

	uc.store.UpdateQuantity(ctx, productID, variantID, quantity)
	return result
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, productID, variantID string, langs ...string) bool {
	state := uc.store.State()
	var name string
	if i := state.Find(productID, variantID); i >= 0 {
		name = state.Items[i].Product.Name
	}

	removed := uc.store.RemoveItem(ctx, productID, variantID)
	if removed {
		uc.toaster.Notify(toast.Notification{
			Type:      model.ToastInfo,
			TitleID:   "toast.cart.removed.title",
			MessageID: "toast.cart.removed.message",
			Data:      map[string]interface{}{"Product": name},
		}, langs...)
	}
	return removed
}

func (uc *cartUseCase) Clear(ctx context.Context) {
	uc.store.Clear(ctx)
}

func (uc *cartUseCase) ItemQuantity(productID, variantID string) int {
	return uc.store.ItemQuantity(productID, variantID)
}

func (uc *cartUseCase) IsInCart(productID, variantID string) bool {
	return uc.store.IsInCart(productID, variantID)
}

func (uc *cartUseCase) notifyInvalid(product model.Product, result cart.ValidationResult, langs []string) {
	n := toast.Notification{
		Type: model.ToastError,
		Data: map[string]interface{}{
			"Product": product.Name,
			"Max":     result.MaxAllowedQuantity,
		},
	}
	switch result.Error.Type {
	case cart.ErrOutOfStock:
		n.TitleID = "toast.cart.out_of_stock.title"
		n.MessageID = "toast.cart.out_of_stock.message"
	case cart.ErrInsufficientStock:
		n.TitleID = "toast.cart.insufficient_stock.title"
		n.MessageID = "toast.cart.insufficient_stock.message"
	default:
		n.TitleID = "toast.cart.invalid_quantity.title"
		n.MessageID = "toast.cart.invalid_quantity.message"
	}
	uc.toaster.Notify(n, langs...)
}
