package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
)

func TestGetReturnsSameContainer(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), nil, logger.NewNop())

	a := m.Get(ctx, "sess-1")
	b := m.Get(ctx, "sess-1")
	if a != b {
		t.Error("repeated Get should return the same container")
	}
	if other := m.Get(ctx, "sess-2"); other == a {
		t.Error("different session ids must not share a container")
	}
}

func TestRehydrateAfterPrune(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m := session.NewManager(store, nil, logger.NewNop())

	s := m.Get(ctx, "sess-1")
	p := model.Product{ID: "p1", Name: "Phone"}
	v := model.Variant{ID: "v1", Price: 100, Stock: 5}
	if result := s.Cart.AddItem(ctx, p, v, 2); !result.IsValid {
		t.Fatalf("add: %+v", result.Error)
	}
	s.Wishlist.Add(ctx, p)

	// Zero max idle drops everything; the state lives in the store.
	if remaining := m.Prune(0); remaining != 0 {
		t.Fatalf("remaining = %d, want 0", remaining)
	}

	rehydrated := m.Get(ctx, "sess-1")
	if rehydrated == s {
		t.Fatal("expected a fresh container after prune")
	}
	if got := rehydrated.Cart.State().TotalItems; got != 2 {
		t.Errorf("cart TotalItems = %d, want 2", got)
	}
	if !rehydrated.Wishlist.IsInWishlist("p1") {
		t.Error("wishlist should survive a prune")
	}
	// Toasts are transient and do not survive.
	if got := len(rehydrated.Toasts.List()); got != 0 {
		t.Errorf("toasts = %d, want 0", got)
	}
}

func TestPruneKeepsRecentSessions(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(storage.NewMemory(), nil, logger.NewNop())

	m.Get(ctx, "sess-1")
	m.Get(ctx, "sess-2")

	if remaining := m.Prune(time.Hour); remaining != 2 {
		t.Errorf("remaining = %d, want 2", remaining)
	}
}

func TestSessionsShareTheBackingStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	// Two managers over the same store model two service instances.
	first := session.NewManager(store, nil, logger.NewNop())
	s := first.Get(ctx, "sess-1")
	s.Cart.AddItem(ctx, model.Product{ID: "p1"}, model.Variant{ID: "v1", Price: 50, Stock: 9}, 1)

	second := session.NewManager(store, nil, logger.NewNop())
	if got := second.Get(ctx, "sess-1").Cart.State().TotalPrice; got != 50 {
		t.Errorf("TotalPrice = %v, want 50", got)
	}
}
