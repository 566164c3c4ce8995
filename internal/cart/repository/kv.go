package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
)

const keyPrefix = "cart:"

// KVRepository stores cart snapshots in the shared key-value store under
// cart:{sessionID}.
type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context, sessionID string) (model.CartState, bool) {
	var state model.CartState
	ok := r.store.Get(ctx, keyPrefix+sessionID, &state)
	if ok {
		// Persisted aggregates are not trusted; they are derived state.
		state.Recompute()
	}
	return state, ok
}

func (r *KVRepository) Save(ctx context.Context, sessionID string, state model.CartState) {
	r.store.Set(ctx, keyPrefix+sessionID, state)
}

func (r *KVRepository) Clear(ctx context.Context, sessionID string) {
	r.store.Remove(ctx, keyPrefix+sessionID)
}
