package auth

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/auth/token"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Store holds one session's authentication state: the session snapshot plus
// the in-memory token pair. The pair is hydrated from the client sink at
// construction and is never part of the persisted session snapshot.
//
// Conceptually a small state machine: anonymous -> authenticating ->
// authenticated, back to anonymous on logout or failed refresh. IsLoading
// and Error are orthogonal flags over those states.
type Store struct {
	mu        sync.Mutex
	sessionID string
	session   model.AuthSession
	tokens    model.TokenPair
	repo      Repository
}

func NewStore(ctx context.Context, sessionID string, repo Repository, clientSink *token.ClientSink) *Store {
	session, _ := repo.Load(ctx, sessionID)
	s := &Store{sessionID: sessionID, session: session, repo: repo}
	if clientSink != nil {
		if pair, ok := clientSink.Read(ctx); ok {
			s.tokens = pair
		}
	}
	return s
}

func (s *Store) Session() model.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) Tokens() model.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

func (s *Store) SetTokens(pair model.TokenPair) {
	s.mu.Lock()
	s.tokens = pair
	s.mu.Unlock()
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.session.IsLoading = loading
	if loading {
		s.session.Error = ""
	}
	s.mu.Unlock()
}

// SetAuthenticated transitions to the authenticated state and persists the
// snapshot.
func (s *Store) SetAuthenticated(ctx context.Context, user model.AuthUser) {
	s.mu.Lock()
	s.session.User = &user
	s.session.IsAuthenticated = true
	s.session.IsLoading = false
	s.session.Error = ""
	s.repo.Save(ctx, s.sessionID, s.session)
	s.mu.Unlock()
}

// SetUser replaces the profile snapshot without touching the auth flag.
func (s *Store) SetUser(ctx context.Context, user model.AuthUser) {
	s.mu.Lock()
	s.session.User = &user
	s.repo.Save(ctx, s.sessionID, s.session)
	s.mu.Unlock()
}

// SetAnonymous drops user, flags and tokens and persists the empty snapshot.
func (s *Store) SetAnonymous(ctx context.Context) {
	s.mu.Lock()
	s.session = model.AuthSession{}
	s.tokens = model.TokenPair{}
	s.repo.Save(ctx, s.sessionID, s.session)
	s.mu.Unlock()
}

// SetError records a failure and leaves the session unauthenticated.
func (s *Store) SetError(ctx context.Context, msg string) {
	s.mu.Lock()
	s.session.User = nil
	s.session.IsAuthenticated = false
	s.session.IsLoading = false
	s.session.Error = msg
	s.repo.Save(ctx, s.sessionID, s.session)
	s.mu.Unlock()
}
