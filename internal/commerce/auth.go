package commerce

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/pkg/errors"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// AuthResult is what the auth endpoints return: a profile plus a fresh token
// pair.
type AuthResult struct {
	User   model.AuthUser  `json:"user"`
	Tokens model.TokenPair `json:"tokens"`
}

func (c *Client) Login(ctx context.Context, lang string, input *LoginInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, Anonymous{Lang: lang}, http.MethodPost, "/auth/login", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, lang string, input *RegisterInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, Anonymous{Lang: lang}, http.MethodPost, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new pair. It deliberately runs an
// unauthenticated single-shot request; routing it through do would recurse
// into the 401 interceptor.
func (c *Client) Refresh(ctx context.Context, lang, refreshToken string) (*model.TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}

	status, respBody, err := c.roundTrip(ctx, Anonymous{Lang: lang}, http.MethodPost, "/auth/refresh", "", body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(respBody)}
	}

	var out struct {
		Tokens model.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, errors.Wrap(err, "commerce: decode refresh response")
	}
	return &out.Tokens, nil
}

// Logout tells the upstream to revoke the pair. Callers treat failures as
// best-effort; local logout must always succeed.
func (c *Client) Logout(ctx context.Context, creds Credentials) error {
	return c.do(ctx, creds, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, lang, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, Anonymous{Lang: lang}, http.MethodPost, "/auth/forgot-password", body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, lang, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return c.do(ctx, Anonymous{Lang: lang}, http.MethodPost, "/auth/reset-password", body, nil)
}

func (c *Client) ChangePassword(ctx context.Context, creds Credentials, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return c.do(ctx, creds, http.MethodPost, "/auth/change-password", body, nil)
}

func (c *Client) GetProfile(ctx context.Context, creds Credentials) (*model.AuthUser, error) {
	var out struct {
		User model.AuthUser `json:"user"`
	}
	if err := c.do(ctx, creds, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, creds Credentials, data map[string]interface{}) (*model.AuthUser, error) {
	var out struct {
		User model.AuthUser `json:"user"`
	}
	if err := c.do(ctx, creds, http.MethodPut, "/auth/profile", data, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
