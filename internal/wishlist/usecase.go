package wishlist

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// UseCase is one session's wishlist. Toggle is the primary entry point used
// by the UI; Add is a no-op on duplicates.
type UseCase interface {
	State() model.WishlistState
	Add(ctx context.Context, product model.Product, langs ...string)
	Remove(ctx context.Context, productID string, langs ...string)
	// Toggle removes the product if present, adds it otherwise, and reports
	// whether the product is in the wishlist afterwards.
	Toggle(ctx context.Context, product model.Product, langs ...string) bool
	IsInWishlist(productID string) bool
	Clear(ctx context.Context)
}
