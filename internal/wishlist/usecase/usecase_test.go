package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
	"github.com/fekuna/omnipos-storefront-service/internal/toast"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist/repository"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist/usecase"
)

func newWishlist(store storage.Store, sessionID string) (wishlist.UseCase, *toast.Store) {
	toaster := toast.NewStore()
	uc := usecase.NewWishlistUseCase(context.Background(), sessionID, repository.NewKVRepository(store), toaster)
	return uc, toaster
}

func product(id, name string) model.Product {
	return model.Product{ID: id, Name: name}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, toaster := newWishlist(storage.NewMemory(), "sess-1")

	p := product("p1", "Phone")
	uc.Add(ctx, p)
	uc.Add(ctx, p)
	uc.Add(ctx, p)

	if got := len(uc.State().Items); got != 1 {
		t.Errorf("items = %d, want 1", got)
	}
	// Duplicate adds do not notify either.
	if got := len(toaster.List()); got != 1 {
		t.Errorf("toasts = %d, want 1", got)
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	ctx := context.Background()
	uc, _ := newWishlist(storage.NewMemory(), "sess-1")
	p := product("p1", "Phone")

	// Even toggle counts always land back where they started.
	for i := 0; i < 4; i++ {
		want := i%2 == 0
		got := uc.Toggle(ctx, p)
		if got != want {
			t.Fatalf("toggle %d = %v, want %v", i, got, want)
		}
		if uc.IsInWishlist(p.ID) != want {
			t.Fatalf("toggle %d: membership = %v, want %v", i, !want, want)
		}
	}
	if got := len(uc.State().Items); got != 0 {
		t.Errorf("items = %d, want 0 after even toggles", got)
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc, toaster := newWishlist(storage.NewMemory(), "sess-1")

	uc.Add(ctx, product("p1", "Phone"))
	uc.Remove(ctx, "ghost")

	if got := len(uc.State().Items); got != 1 {
		t.Errorf("items = %d, want 1", got)
	}
	if got := len(toaster.List()); got != 1 {
		t.Errorf("toasts = %d, want 1 (no removal toast for missing product)", got)
	}
}

func TestPersistAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	uc, _ := newWishlist(store, "sess-1")
	uc.Add(ctx, product("p1", "Phone"))
	uc.Add(ctx, product("p2", "Case"))
	uc.Remove(ctx, "p1")

	rehydrated, _ := newWishlist(store, "sess-1")
	state := rehydrated.State()
	if len(state.Items) != 1 || state.Items[0].ID != "p2" {
		t.Fatalf("rehydrated items = %+v, want [p2]", state.Items)
	}

	other, _ := newWishlist(store, "sess-2")
	if got := len(other.State().Items); got != 0 {
		t.Errorf("sess-2 items = %d, want 0", got)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	uc, _ := newWishlist(store, "sess-1")
	uc.Add(ctx, product("p1", "Phone"))
	uc.Add(ctx, product("p2", "Case"))
	uc.Clear(ctx)

	if got := len(uc.State().Items); got != 0 {
		t.Errorf("items = %d, want 0", got)
	}
	rehydrated, _ := newWishlist(store, "sess-1")
	if got := len(rehydrated.State().Items); got != 0 {
		t.Errorf("rehydrated items = %d, want 0", got)
	}
}
