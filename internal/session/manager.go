package session

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	authrepo "github.com/fekuna/omnipos-storefront-service/internal/auth/repository"
	"github.com/fekuna/omnipos-storefront-service/internal/auth/token"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	cartrepo "github.com/fekuna/omnipos-storefront-service/internal/cart/repository"
	cartuc "github.com/fekuna/omnipos-storefront-service/internal/cart/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/stock"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
	"github.com/fekuna/omnipos-storefront-service/internal/toast"
	"github.com/fekuna/omnipos-storefront-service/internal/wishlist"
	wishrepo "github.com/fekuna/omnipos-storefront-service/internal/wishlist/repository"
	wishuc "github.com/fekuna/omnipos-storefront-service/internal/wishlist/usecase"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

// Session is the dependency-injected container of one browser session's
// stores. Instances are isolated; tests build as many as they like with an
// in-memory backend.
type Session struct {
	ID         string
	Cart       cart.UseCase
	Wishlist   wishlist.UseCase
	Auth       *auth.Store
	Toasts     *toast.Store
	ClientSink *token.ClientSink

	lastSeen time.Time
}

// Manager hydrates session containers from the shared key-value store on
// first access and keeps them in memory for the life of the process. The
// backing store is shared across instances with last-write-wins semantics;
// there is no cross-instance locking.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store  storage.Store
	stocks stock.Reader
	logger logger.ZapLogger
}

func NewManager(store storage.Store, stocks stock.Reader, log logger.ZapLogger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		stocks:   stocks,
		logger:   log,
	}
}

// Get returns the container for the session id, hydrating it from storage
// on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sessionID]; ok {
		s.lastSeen = time.Now()
		return s
	}

	toaster := toast.NewStore()
	clientSink := token.NewClientSink(m.store, sessionID)

	cartStore := cart.NewStore(ctx, sessionID, cartrepo.NewKVRepository(m.store))

	s := &Session{
		ID:         sessionID,
		Cart:       cartuc.NewCartUseCase(cartStore, m.stocks, toaster, m.logger),
		Wishlist:   wishuc.NewWishlistUseCase(ctx, sessionID, wishrepo.NewKVRepository(m.store), toaster),
		Auth:       auth.NewStore(ctx, sessionID, authrepo.NewKVRepository(m.store), clientSink),
		Toasts:     toaster,
		ClientSink: clientSink,
		lastSeen:   time.Now(),
	}
	m.sessions[sessionID] = s
	return s
}

// Prune drops containers idle longer than maxIdle and returns how many
// remain. State stays in the key-value store, so a pruned session rehydrates
// on its next request.
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
	return len(m.sessions)
}

// StartJanitor prunes idle sessions periodically until ctx is done.
func (m *Manager) StartJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			live := m.Prune(maxIdle)
			m.logger.Debug("session janitor ran", zap.Int("live_sessions", live))
		}
	}
}
