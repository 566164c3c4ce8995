package cart_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/cart/repository"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
)

func testProduct(id string, variants ...model.Variant) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Slug: "product-" + id, Variants: variants}
}

func testVariant(id string, price float64, stock int) model.Variant {
	return model.Variant{ID: id, Color: "black", Price: price, Stock: stock}
}

func newTestStore(t *testing.T) (*cart.Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return cart.NewStore(context.Background(), "sess-1", repository.NewKVRepository(mem)), mem
}

func assertAggregates(t *testing.T, state model.CartState) {
	t.Helper()
	items := 0
	price := 0.0
	for _, it := range state.Items {
		items += it.Quantity
		price += it.Variant.Price * float64(it.Quantity)
	}
	if state.TotalItems != items {
		t.Errorf("TotalItems = %d, want %d", state.TotalItems, items)
	}
	if state.TotalPrice != price {
		t.Errorf("TotalPrice = %v, want %v", state.TotalPrice, price)
	}
}

func TestStoreAggregatesAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	p1 := testProduct("p1")
	v1 := testVariant("v1", 100, 50)
	p2 := testProduct("p2")
	v2 := testVariant("v2", 250, 50)

	store.AddItem(ctx, p1, v1, 2)
	assertAggregates(t, store.State())

	store.AddItem(ctx, p2, v2, 1)
	assertAggregates(t, store.State())

	store.AddItem(ctx, p1, v1, 3)
	assertAggregates(t, store.State())

	state := store.State()
	if state.TotalItems != 6 {
		t.Errorf("TotalItems = %d, want 6", state.TotalItems)
	}
	if state.TotalPrice != 750 {
		t.Errorf("TotalPrice = %v, want 750", state.TotalPrice)
	}

	store.UpdateQuantity(ctx, "p1", "v1", 1)
	assertAggregates(t, store.State())

	store.RemoveItem(ctx, "p2", "v2")
	assertAggregates(t, store.State())

	state = store.State()
	if state.TotalItems != 1 || state.TotalPrice != 100 {
		t.Errorf("after mutations: TotalItems=%d TotalPrice=%v, want 1/100", state.TotalItems, state.TotalPrice)
	}
}

func TestStoreAddMergesCompositeKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	p := testProduct("p1")
	v := testVariant("v1", 10, 100)

	store.AddItem(ctx, p, v, 1)
	store.AddItem(ctx, p, v, 2)

	state := store.State()
	if len(state.Items) != 1 {
		t.Fatalf("items = %d, want 1 merged line", len(state.Items))
	}
	if state.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", state.Items[0].Quantity)
	}

	// Same product, different variant stays a separate line.
	store.AddItem(ctx, p, testVariant("v2", 10, 100), 1)
	if got := len(store.State().Items); got != 2 {
		t.Errorf("items = %d, want 2", got)
	}
}

func TestStoreUpdateQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	p := testProduct("p1")
	v := testVariant("v1", 10, 100)
	store.AddItem(ctx, p, v, 2)

	store.UpdateQuantity(ctx, "p1", "v1", 0)

	if store.IsInCart("p1", "v1") {
		t.Error("item still in cart after quantity 0")
	}
	state := store.State()
	if state.TotalItems != 0 || state.TotalPrice != 0 {
		t.Errorf("aggregates not zeroed: %+v", state)
	}
}

func TestStoreUpdateQuantityMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.UpdateQuantity(ctx, "nope", "nope", 3)
	if got := len(store.State().Items); got != 0 {
		t.Errorf("items = %d, want 0", got)
	}
}

func TestStoreItemQuantityAbsentIsZero(t *testing.T) {
	store, _ := newTestStore(t)
	if got := store.ItemQuantity("p", "v"); got != 0 {
		t.Errorf("ItemQuantity = %d, want 0", got)
	}
	if store.IsInCart("p", "v") {
		t.Error("IsInCart = true for absent item")
	}
}

func TestStorePersistsAndRehydrates(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	repo := repository.NewKVRepository(mem)

	store := cart.NewStore(ctx, "sess-1", repo)
	store.AddItem(ctx, testProduct("p1"), testVariant("v1", 100, 10), 2)

	// A second store over the same backend sees the committed state.
	reloaded := cart.NewStore(ctx, "sess-1", repo)
	state := reloaded.State()
	if len(state.Items) != 1 || state.Items[0].Quantity != 2 {
		t.Fatalf("rehydrated state = %+v", state)
	}
	if state.TotalItems != 2 || state.TotalPrice != 200 {
		t.Errorf("rehydrated aggregates = %d/%v, want 2/200", state.TotalItems, state.TotalPrice)
	}

	// Sessions are isolated by id.
	other := cart.NewStore(ctx, "sess-2", repo)
	if got := len(other.State().Items); got != 0 {
		t.Errorf("foreign session items = %d, want 0", got)
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	repo := repository.NewKVRepository(mem)

	store := cart.NewStore(ctx, "sess-1", repo)
	store.AddItem(ctx, testProduct("p1"), testVariant("v1", 100, 10), 2)
	store.Clear(ctx)

	state := store.State()
	if len(state.Items) != 0 || state.TotalItems != 0 || state.TotalPrice != 0 {
		t.Errorf("state after clear = %+v", state)
	}

	reloaded := cart.NewStore(ctx, "sess-1", repo)
	if got := len(reloaded.State().Items); got != 0 {
		t.Errorf("rehydrated items after clear = %d, want 0", got)
	}
}
