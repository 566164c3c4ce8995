package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/auth/token"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/storage"
	"github.com/golang-jwt/jwt/v5"
)

type recordingWriter struct {
	cookies map[string]string
	maxAges map[string]time.Duration
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{cookies: map[string]string{}, maxAges: map[string]time.Duration{}}
}

func (w *recordingWriter) SetCookie(name, value string, maxAge time.Duration) {
	w.cookies[name] = value
	w.maxAges[name] = maxAge
}

func (w *recordingWriter) ClearCookie(name string) {
	delete(w.cookies, name)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestSynchronizerFansOut(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	client := token.NewClientSink(store, "sess-1")
	writer := newRecordingWriter()
	sync := token.NewSynchronizer(client, token.NewCookieSink(writer, 0))

	pair := model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}
	sync.Sync(ctx, pair)

	stored, ok := client.Read(ctx)
	if !ok || stored != pair {
		t.Fatalf("client sink = %+v ok=%v, want %+v", stored, ok, pair)
	}
	if writer.cookies[token.AccessCookie] != "acc" || writer.cookies[token.RefreshCookie] != "ref" {
		t.Fatalf("cookies = %+v", writer.cookies)
	}
	if got := writer.maxAges[token.AccessCookie]; got != 7*24*time.Hour {
		t.Errorf("access cookie max age = %v, want 7 days", got)
	}

	sync.Clear(ctx)
	if _, ok := client.Read(ctx); ok {
		t.Error("client sink should be empty after clear")
	}
	if len(writer.cookies) != 0 {
		t.Errorf("cookies remain after clear: %+v", writer.cookies)
	}
}

func TestClientSinkIsolatedPerSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	token.NewClientSink(store, "sess-1").Write(ctx, model.TokenPair{AccessToken: "a1"})
	if _, ok := token.NewClientSink(store, "sess-2").Read(ctx); ok {
		t.Error("sess-2 must not see sess-1 tokens")
	}
}

func TestNeedsRefresh(t *testing.T) {
	leeway := 30 * time.Second

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", true},
		{"garbage", "not-a-jwt", true},
		{"expired", signedToken(t, time.Now().Add(-time.Hour)), true},
		{"expiring within leeway", signedToken(t, time.Now().Add(10*time.Second)), true},
		{"fresh", signedToken(t, time.Now().Add(time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.NeedsRefresh(tt.token, leeway); got != tt.want {
				t.Errorf("NeedsRefresh() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeedsRefreshWithoutExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !token.NeedsRefresh(s, time.Second) {
		t.Error("a token without exp should always refresh")
	}
}
