package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
)

const keyPrefix = "wishlist:"

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context, sessionID string) (model.WishlistState, bool) {
	var state model.WishlistState
	ok := r.store.Get(ctx, keyPrefix+sessionID, &state)
	return state, ok
}

func (r *KVRepository) Save(ctx context.Context, sessionID string, state model.WishlistState) {
	r.store.Set(ctx, keyPrefix+sessionID, state)
}

func (r *KVRepository) Clear(ctx context.Context, sessionID string) {
	r.store.Remove(ctx, keyPrefix+sessionID)
}
