package usecase

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/toast"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
)

// wishlistUseCase keeps one session's product set in memory and snapshots it
// through the repository after every mutation. Uniqueness is enforced by
// product id; there is no quantity or stock concept on a wishlist.
type wishlistUseCase struct {
	mu        sync.Mutex
	sessionID string
	state     model.WishlistState
	repo      wishlist.Repository
	toaster   *toast.Store
}

func NewWishlistUseCase(ctx context.Context, sessionID string, repo wishlist.Repository, toaster *toast.Store) wishlist.UseCase {
	state, _ := repo.Load(ctx, sessionID)
	return &wishlistUseCase{
		sessionID: sessionID,
		state:     state,
		repo:      repo,
		toaster:   toaster,
	}
}

func (uc *wishlistUseCase) State() model.WishlistState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot()
}

func (uc *wishlistUseCase) Add(ctx context.Context, product model.Product, langs ...string) {
	uc.mu.Lock()
	if uc.state.Contains(product.ID) {
		uc.mu.Unlock()
		return
	}
	uc.state.Items = append(uc.state.Items, product)
	uc.repo.Save(ctx, uc.sessionID, uc.snapshot())
	uc.mu.Unlock()

	uc.toaster.Notify(toast.Notification{
		Type:      model.ToastSuccess,
		TitleID:   "toast.wishlist.added.title",
		MessageID: "toast.wishlist.added.message",
		Data:      map[string]interface{}{"Product": product.Name},
	}, langs...)
}

func (uc *wishlistUseCase) Remove(ctx context.Context, productID string, langs ...string) {
	uc.mu.Lock()
	var name string
	kept := uc.state.Items[:0]
	for _, p := range uc.state.Items {
		if p.ID == productID {
			name = p.Name
			continue
		}
		kept = append(kept, p)
	}
	removed := len(kept) != len(uc.state.Items)
	uc.state.Items = kept
	if removed {
		uc.repo.Save(ctx, uc.sessionID, uc.snapshot())
	}
	uc.mu.Unlock()

	if removed {
		uc.toaster.Notify(toast.Notification{
			Type:      model.ToastInfo,
			TitleID:   "toast.wishlist.removed.title",
			MessageID: "toast.wishlist.removed.message",
			Data:      map[string]interface{}{"Product": name},
		}, langs...)
	}
}

func (uc *wishlistUseCase) Toggle(ctx context.Context, product model.Product, langs ...string) bool {
	if uc.IsInWishlist(product.ID) {
		uc.Remove(ctx, product.ID, langs...)
		return false
	}
	uc.Add(ctx, product, langs...)
	return true
}

func (uc *wishlistUseCase) IsInWishlist(productID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Contains(productID)
}

func (uc *wishlistUseCase) Clear(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = model.WishlistState{}
	uc.repo.Clear(ctx, uc.sessionID)
	uc.repo.Save(ctx, uc.sessionID, uc.state)
}

func (uc *wishlistUseCase) snapshot() model.WishlistState {
	out := model.WishlistState{Items: make([]model.Product, len(uc.state.Items))}
	copy(out.Items, uc.state.Items)
	return out
}
