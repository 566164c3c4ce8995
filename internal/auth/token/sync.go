package token

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Cookie names mirrored for server-rendered reads. Server-rendered requests
// can only see cookies, while API calls read the client-side store; the
// synchronizer keeps the two consistent.
const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// Sink is one destination for a fresh token pair. Writes follow the storage
// contract: failures degrade silently, they never block a login.
type Sink interface {
	Write(ctx context.Context, pair model.TokenPair)
	Clear(ctx context.Context)
}

// Synchronizer fans a token pair out to every sink, and clears all of them
// on logout. All sinks must receive every pair or server-rendered pages will
// disagree with client state about who is logged in.
type Synchronizer struct {
	sinks []Sink
}

func NewSynchronizer(sinks ...Sink) *Synchronizer {
	return &Synchronizer{sinks: sinks}
}

func (s *Synchronizer) Sync(ctx context.Context, pair model.TokenPair) {
	for _, sink := range s.sinks {
		sink.Write(ctx, pair)
	}
}

func (s *Synchronizer) Clear(ctx context.Context) {
	for _, sink := range s.sinks {
		sink.Clear(ctx)
	}
}
