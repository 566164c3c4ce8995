package auth

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository persists the session's {user, isAuthenticated} snapshot. The
// ephemeral IsLoading/Error fields are excluded from serialization, so a
// rehydrated session always comes back in a neutral state.
type Repository interface {
	Load(ctx context.Context, sessionID string) (model.AuthSession, bool)
	Save(ctx context.Context, sessionID string, session model.AuthSession)
	Clear(ctx context.Context, sessionID string)
}
