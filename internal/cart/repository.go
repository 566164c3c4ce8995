package cart

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository persists one session's cart snapshot. Implementations follow
// the storage.Store contract: failures degrade to no-ops and Load reports
// false instead of erroring.
type Repository interface {
	Load(ctx context.Context, sessionID string) (model.CartState, bool)
	Save(ctx context.Context, sessionID string, state model.CartState)
	Clear(ctx context.Context, sessionID string)
}
