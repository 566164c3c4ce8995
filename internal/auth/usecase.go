package auth

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// UseCase orchestrates the session's authentication lifecycle against the
// upstream API and keeps the token sinks in sync. It doubles as the
// commerce.Credentials for authenticated upstream calls made on behalf of
// this session.
//
// Login and Register return the upstream error to the caller (a form needs
// to react to it) after recording a human-readable message in the session
// state. Logout never fails: the upstream call is best-effort, local state
// and tokens are always cleared.
type UseCase interface {
	commerce.Credentials

	Session() model.AuthSession
	Login(ctx context.Context, input *commerce.LoginInput) (*model.AuthUser, error)
	Register(ctx context.Context, input *commerce.RegisterInput) (*model.AuthUser, error)
	SocialLogin(ctx context.Context, user model.AuthUser, pair model.TokenPair)
	Logout(ctx context.Context)
	Refresh(ctx context.Context) error
	// EnsureFresh refreshes proactively when the access token is about to
	// expire, so most requests never hit the 401 retry path.
	EnsureFresh(ctx context.Context)
	GetProfile(ctx context.Context) (*model.AuthUser, error)
	UpdateProfile(ctx context.Context, data map[string]interface{}) (*model.AuthUser, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, current, next string) error
}
