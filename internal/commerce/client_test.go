package commerce_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
)

// fakeCreds records the refresh callbacks the client fires.
type fakeCreds struct {
	access    string
	refresh   string
	lang      string
	refreshed []model.TokenPair
	expired   bool
}

func (f *fakeCreds) AccessToken() string  { return f.access }
func (f *fakeCreds) RefreshToken() string { return f.refresh }
func (f *fakeCreds) Locale() string       { return f.lang }
func (f *fakeCreds) TokensRefreshed(pair model.TokenPair) {
	f.refreshed = append(f.refreshed, pair)
	f.access = pair.AccessToken
	f.refresh = pair.RefreshToken
}
func (f *fakeCreds) AuthExpired() { f.expired = true }

func newClient(url string) *commerce.Client {
	return commerce.NewClient(&commerce.Config{BaseURL: url}, logger.NewNop())
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotLang, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	creds := &fakeCreds{access: "acc-1", refresh: "ref-1", lang: "id"}
	if _, err := newClient(srv.URL).GetProfile(context.Background(), creds); err != nil {
		t.Fatalf("profile: %v", err)
	}

	if gotAuth != "Bearer acc-1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotLang != "id" {
		t.Errorf("Accept-Language = %q", gotLang)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestAnonymousOmitsAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newClient(srv.URL).ForgotPassword(context.Background(), "en", "a@b.c"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedRefreshesOnceAndRetries(t *testing.T) {
	var profileCalls, refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&profileCalls, 1)
		if r.Header.Get("Authorization") != "Bearer acc-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": model.AuthUser{ID: "u1"},
		})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"tokens": model.TokenPair{AccessToken: "acc-2", RefreshToken: "ref-2"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	creds := &fakeCreds{access: "stale", refresh: "ref-1", lang: "en"}
	user, err := newClient(srv.URL).GetProfile(context.Background(), creds)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("user = %+v", user)
	}
	if refreshCalls != 1 || profileCalls != 2 {
		t.Errorf("refresh=%d profile=%d, want 1 and 2", refreshCalls, profileCalls)
	}
	if len(creds.refreshed) != 1 || creds.refreshed[0].AccessToken != "acc-2" {
		t.Errorf("refreshed = %+v", creds.refreshed)
	}
	if creds.expired {
		t.Error("AuthExpired fired on a successful retry")
	}
}

func TestSecondUnauthorizedIsFatal(t *testing.T) {
	var profileCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&profileCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"tokens": model.TokenPair{AccessToken: "acc-2", RefreshToken: "ref-2"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	creds := &fakeCreds{access: "stale", refresh: "ref-1", lang: "en"}
	_, err := newClient(srv.URL).GetProfile(context.Background(), creds)
	if !errors.Is(err, commerce.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !creds.expired {
		t.Error("AuthExpired should fire after the second 401")
	}
	if profileCalls != 2 {
		t.Errorf("profile calls = %d, want exactly 2", profileCalls)
	}
}

func TestFailedRefreshIsFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	creds := &fakeCreds{access: "stale", refresh: "revoked", lang: "en"}
	_, err := newClient(srv.URL).GetProfile(context.Background(), creds)
	if !errors.Is(err, commerce.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !creds.expired {
		t.Error("AuthExpired should fire when the refresh fails")
	}
}

func TestUnauthorizedWithoutRefreshTokenIsNotRetried(t *testing.T) {
	var profileCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&profileCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := &fakeCreds{access: "acc", lang: "en"}
	_, err := newClient(srv.URL).GetProfile(context.Background(), creds)

	var apiErr *commerce.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("err = %v, want a 401 APIError", err)
	}
	if profileCalls != 1 {
		t.Errorf("profile calls = %d, want 1", profileCalls)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested", `{"error":{"message":"Email already in use"}}`, "Email already in use"},
		{"flat", `{"message":"Not found"}`, "Not found"},
		{"empty", ``, "Something went wrong. Please try again."},
		{"html", `<html>bad gateway</html>`, "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newClient(srv.URL).ForgotPassword(context.Background(), "en", "a@b.c")
			if got := commerce.Message(err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
