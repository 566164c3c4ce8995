package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Credentials supplies per-call authentication and locale state, and receives
// the outcome of a silent refresh. The auth use case implements this; tests
// use a plain struct.
type Credentials interface {
	AccessToken() string
	RefreshToken() string
	Locale() string
	// TokensRefreshed is called after a successful silent refresh so the
	// caller can re-run token sync with the new pair.
	TokensRefreshed(pair model.TokenPair)
	// AuthExpired is called when the refresh itself fails or a retried
	// request still comes back 401. The caller must treat the session as
	// logged out.
	AuthExpired()
}

// Anonymous is the Credentials for unauthenticated calls.
type Anonymous struct {
	Lang string
}

func (a Anonymous) AccessToken() string             { return "" }
func (a Anonymous) RefreshToken() string            { return "" }
func (a Anonymous) Locale() string                  { return a.Lang }
func (a Anonymous) TokensRefreshed(model.TokenPair) {}
func (a Anonymous) AuthExpired()                    {}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks JSON over HTTPS to the upstream commerce API. All requests
// carry a Bearer access token when available and an Accept-Language header.
//
// Retry policy: on a 401 the client refreshes the token pair exactly once
// using the stored refresh token, retries the original request once with the
// new access token, and gives up (reporting AuthExpired) if either step
// fails. No other status is retried.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.ZapLogger
}

func NewClient(cfg *Config, log logger.ZapLogger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, body, dest interface{}) error {
	access := creds.AccessToken()

	status, respBody, err := c.roundTrip(ctx, creds, method, path, access, body)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && creds.RefreshToken() != "" {
		pair, refreshErr := c.Refresh(ctx, creds.Locale(), creds.RefreshToken())
		if refreshErr != nil {
			creds.AuthExpired()
			return errors.Wrap(ErrUnauthorized, "token refresh failed")
		}
		creds.TokensRefreshed(*pair)

		status, respBody, err = c.roundTrip(ctx, creds, method, path, pair.AccessToken, body)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			// Second 401 after a fresh token is fatal for the session.
			creds.AuthExpired()
			return ErrUnauthorized
		}
	}

	if status < 200 || status >= 300 {
		return &APIError{StatusCode: status, Message: extractMessage(respBody)}
	}

	if dest != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dest); err != nil {
			return errors.Wrap(err, "commerce: decode response")
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, creds Credentials, method, path, access string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "commerce: encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "commerce: build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	if lang := creds.Locale(); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed", zap.String("path", path), zap.Error(err))
		return 0, nil, errors.Wrap(err, "commerce: request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "commerce: read response")
	}
	return resp.StatusCode, respBody, nil
}
