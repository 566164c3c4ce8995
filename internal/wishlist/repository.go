package wishlist

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository persists one session's wishlist snapshot with the same degraded
// no-op semantics as the cart repository.
type Repository interface {
	Load(ctx context.Context, sessionID string) (model.WishlistState, bool)
	Save(ctx context.Context, sessionID string, state model.WishlistState)
	Clear(ctx context.Context, sessionID string)
}
