package token

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
)

const clientKeyPrefix = "tokens:"

// ClientSink keeps the pair in the client-readable persistent store, the
// side API calls read from. It is also the hydration source after a reload.
type ClientSink struct {
	store     storage.Store
	sessionID string
}

func NewClientSink(store storage.Store, sessionID string) *ClientSink {
	return &ClientSink{store: store, sessionID: sessionID}
}

func (s *ClientSink) Write(ctx context.Context, pair model.TokenPair) {
	s.store.Set(ctx, clientKeyPrefix+s.sessionID, pair)
}

func (s *ClientSink) Clear(ctx context.Context) {
	s.store.Remove(ctx, clientKeyPrefix+s.sessionID)
}

// Read returns the stored pair, if any.
func (s *ClientSink) Read(ctx context.Context) (model.TokenPair, bool) {
	var pair model.TokenPair
	ok := s.store.Get(ctx, clientKeyPrefix+s.sessionID, &pair)
	return pair, ok
}

// CookieWriter abstracts the response cookie surface so the sink can be
// tested without an HTTP stack. The fiber handler adapts its context to
// this.
type CookieWriter interface {
	SetCookie(name, value string, maxAge time.Duration)
	ClearCookie(name string)
}

// CookieSink mirrors the pair into the accessToken/refreshToken cookies with
// a 7-day expiry, path /, SameSite=Lax, Secure over HTTPS (the writer owns
// those attributes).
type CookieSink struct {
	writer CookieWriter
	maxAge time.Duration
}

func NewCookieSink(writer CookieWriter, maxAge time.Duration) *CookieSink {
	if maxAge == 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &CookieSink{writer: writer, maxAge: maxAge}
}

func (s *CookieSink) Write(_ context.Context, pair model.TokenPair) {
	s.writer.SetCookie(AccessCookie, pair.AccessToken, s.maxAge)
	s.writer.SetCookie(RefreshCookie, pair.RefreshToken, s.maxAge)
}

func (s *CookieSink) Clear(context.Context) {
	s.writer.ClearCookie(AccessCookie)
	s.writer.ClearCookie(RefreshCookie)
}
