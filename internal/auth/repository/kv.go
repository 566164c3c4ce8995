package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
)

const keyPrefix = "auth:"

type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context, sessionID string) (model.AuthSession, bool) {
	var session model.AuthSession
	ok := r.store.Get(ctx, keyPrefix+sessionID, &session)
	// IsLoading and Error carry json:"-" so they cannot survive a round
	// trip, but be explicit: a fresh load never shows a stale error.
	session.IsLoading = false
	session.Error = ""
	return session, ok
}

func (r *KVRepository) Save(ctx context.Context, sessionID string, session model.AuthSession) {
	r.store.Set(ctx, keyPrefix+sessionID, session)
}

func (r *KVRepository) Clear(ctx context.Context, sessionID string) {
	r.store.Remove(ctx, keyPrefix+sessionID)
}
