package cart

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Store is the base cart state container for one session. It performs no
// stock validation; the use case layered on top is the public entry point
// and owns the validation policy. Mutations are serialized by a per-store
// mutex, mirroring the single-threaded read-modify-write semantics the
// browser runtime gives the original stores.
//
// Persistence is explicit: every mutation updates the in-memory state, then
// snapshots it through the repository. The backing store is shared across
// concurrent sessions of the same user with last-write-wins semantics; there
// is no cross-instance locking.
type Store struct {
	mu        sync.Mutex
	sessionID string
	state     model.CartState
	repo      Repository
}

// NewStore hydrates a store from the repository, or starts empty.
func NewStore(ctx context.Context, sessionID string, repo Repository) *Store {
	state, _ := repo.Load(ctx, sessionID)
	return &Store{sessionID: sessionID, state: state, repo: repo}
}

// State returns a snapshot of the current cart.
func (s *Store) State() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddItem merges quantity into an existing (product, variant) line or
// appends a new one with denormalized product/variant snapshots.
func (s *Store) AddItem(ctx context.Context, product model.Product, variant model.Variant, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.state.Find(product.ID, variant.ID); i >= 0 {
		s.state.Items[i].Quantity += quantity
	} else {
		s.state.Items = append(s.state.Items, model.CartItem{
			ProductID: product.ID,
			VariantID: variant.ID,
			Quantity:  quantity,
			Product:   product,
			Variant:   variant,
		})
	}

	s.commit(ctx)
}

// RemoveItem drops the matching line. It reports whether a line was actually
// removed so the caller can decide about notifying.
func (s *Store) RemoveItem(ctx context.Context, productID, variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.Find(productID, variantID)
	if i < 0 {
		return false
	}
	s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)

	s.commit(ctx)
	return true
}

// UpdateQuantity replaces the line's quantity in place. A quantity of zero
// or below removes the line; a missing line is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID, variantID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID, variantID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.Find(productID, variantID)
	if i < 0 {
		return
	}
	s.state.Items[i].Quantity = quantity

	s.commit(ctx)
}

// Clear resets to the empty state with zeroed aggregates.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.CartState{}
	s.repo.Clear(ctx, s.sessionID)
	s.repo.Save(ctx, s.sessionID, s.state)
}

// ItemQuantity returns 0 when the line is absent.
func (s *Store) ItemQuantity(productID, variantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.state.Find(productID, variantID); i >= 0 {
		return s.state.Items[i].Quantity
	}
	return 0
}

func (s *Store) IsInCart(productID, variantID string) bool {
	return s.ItemQuantity(productID, variantID) > 0
}

// commit recomputes aggregates and snapshots to the repository. Callers must
// hold the mutex.
func (s *Store) commit(ctx context.Context) {
	s.state.Recompute()
	s.repo.Save(ctx, s.sessionID, s.snapshot())
}

func (s *Store) snapshot() model.CartState {
	out := s.state
	out.Items = make([]model.CartItem, len(s.state.Items))
	copy(out.Items, s.state.Items)
	return out
}
