package cart

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// UseCase is the validated cart surface handlers talk to. AddItem and
// UpdateQuantity apply the stock policy before mutating and report the
// outcome as a ValidationResult; callers must check IsValid and must not
// assume the mutation happened. langs carries the caller's language
// preferences for localized notifications.
type UseCase interface {
	State() model.CartState
	AddItem(ctx context.Context, product model.Product, variant model.Variant, quantity int, langs ...string) ValidationResult
	UpdateQuantity(ctx context.Context, productID, variantID string, quantity int, langs ...string) ValidationResult
	RemoveItem(ctx context.Context, productID, variantID string, langs ...string) bool
	Clear(ctx context.Context)
	ItemQuantity(productID, variantID string) int
	IsInCart(productID, variantID string) bool
}
