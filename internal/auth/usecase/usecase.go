package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/auth/token"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

// refreshLeeway is how close to expiry an access token may get before
// EnsureFresh refreshes it.
const refreshLeeway = 30 * time.Second

// authUseCase is request-scoped: the store is shared per session, the token
// synchronizer carries the current request's cookie sink, lang carries its
// Accept-Language.
type authUseCase struct {
	store  *auth.Store
	client *commerce.Client
	sync   *token.Synchronizer
	lang   string
	logger logger.ZapLogger
}

func NewAuthUseCase(store *auth.Store, client *commerce.Client, sync *token.Synchronizer, lang string, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{
		store:  store,
		client: client,
		sync:   sync,
		lang:   lang,
		logger: log,
	}
}

// --- commerce.Credentials ---

func (uc *authUseCase) AccessToken() string  { return uc.store.Tokens().AccessToken }
func (uc *authUseCase) RefreshToken() string { return uc.store.Tokens().RefreshToken }
func (uc *authUseCase) Locale() string       { return uc.lang }

func (uc *authUseCase) TokensRefreshed(pair model.TokenPair) {
	uc.syncTokens(context.Background(), pair)
}

func (uc *authUseCase) AuthExpired() {
	uc.forceLogout(context.Background())
}

// --- lifecycle ---

func (uc *authUseCase) Session() model.AuthSession {
	return uc.store.Session()
}

func (uc *authUseCase) Login(ctx context.Context, input *commerce.LoginInput) (*model.AuthUser, error) {
	uc.store.SetLoading(true)

	result, err := uc.client.Login(ctx, uc.lang, input)
	if err != nil {
		uc.store.SetError(ctx, commerce.Message(err))
		return nil, err
	}

	uc.syncTokens(ctx, result.Tokens)
	uc.store.SetAuthenticated(ctx, result.User)
	return &result.User, nil
}

func (uc *authUseCase) Register(ctx context.Context, input *commerce.RegisterInput) (*model.AuthUser, error) {
	uc.store.SetLoading(true)

	result, err := uc.client.Register(ctx, uc.lang, input)
	if err != nil {
		uc.store.SetError(ctx, commerce.Message(err))
		return nil, err
	}

	uc.syncTokens(ctx, result.Tokens)
	uc.store.SetAuthenticated(ctx, result.User)
	return &result.User, nil
}

// SocialLogin takes user and tokens as handed over by the provider callback
// instead of fetching them.
func (uc *authUseCase) SocialLogin(ctx context.Context, user model.AuthUser, pair model.TokenPair) {
	uc.syncTokens(ctx, pair)
	uc.store.SetAuthenticated(ctx, user)
}

func (uc *authUseCase) Logout(ctx context.Context) {
	if uc.AccessToken() != "" {
		if err := uc.client.Logout(ctx, uc); err != nil {
			// Logout must always succeed locally.
			uc.logger.Warn("upstream logout failed", zap.Error(err))
		}
	}
	uc.forceLogout(ctx)
}

func (uc *authUseCase) Refresh(ctx context.Context) error {
	refresh := uc.RefreshToken()
	if refresh == "" {
		uc.forceLogout(ctx)
		return nil
	}

	pair, err := uc.client.Refresh(ctx, uc.lang, refresh)
	if err != nil {
		uc.forceLogout(ctx)
		return err
	}

	uc.syncTokens(ctx, *pair)
	return nil
}

func (uc *authUseCase) EnsureFresh(ctx context.Context) {
	tokens := uc.store.Tokens()
	if tokens.RefreshToken == "" {
		return
	}
	if token.NeedsRefresh(tokens.AccessToken, refreshLeeway) {
		if err := uc.Refresh(ctx); err != nil {
			uc.logger.Debug("proactive refresh failed", zap.Error(err))
		}
	}
}

func (uc *authUseCase) GetProfile(ctx context.Context) (*model.AuthUser, error) {
	user, err := uc.client.GetProfile(ctx, uc)
	if err != nil {
		return nil, err
	}
	uc.store.SetUser(ctx, *user)
	return user, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, data map[string]interface{}) (*model.AuthUser, error) {
	user, err := uc.client.UpdateProfile(ctx, uc, data)
	if err != nil {
		return nil, err
	}
	uc.store.SetUser(ctx, *user)
	return user, nil
}

func (uc *authUseCase) ForgotPassword(ctx context.Context, email string) error {
	return uc.client.ForgotPassword(ctx, uc.lang, email)
}

func (uc *authUseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return uc.client.ResetPassword(ctx, uc.lang, resetToken, newPassword)
}

func (uc *authUseCase) ChangePassword(ctx context.Context, current, next string) error {
	return uc.client.ChangePassword(ctx, uc, current, next)
}

// syncTokens is the token-sync procedure: the in-memory pair, the
// client-readable store and the cookies all receive the new pair together.
func (uc *authUseCase) syncTokens(ctx context.Context, pair model.TokenPair) {
	uc.store.SetTokens(pair)
	uc.sync.Sync(ctx, pair)
}

// forceLogout clears tokens from every sink and resets the session to
// anonymous regardless of prior state.
func (uc *authUseCase) forceLogout(ctx context.Context) {
	uc.sync.Clear(ctx)
	uc.store.SetAnonymous(ctx)
}
