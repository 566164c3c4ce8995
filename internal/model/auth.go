package model

// AuthUser is the profile record owned by the upstream API. Fields beyond
// the common ones are kept as-is in Extra so upstream additions survive a
// round trip through our storage.
type AuthUser struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Phone     string                 `json:"phone,omitempty"`
	AvatarURL string                 `json:"avatar_url,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// AuthSession is the per-session authentication state. Only User and
// IsAuthenticated are persisted; IsLoading and Error are ephemeral and reset
// to neutral on every rehydration.
type AuthSession struct {
	User            *AuthUser `json:"user"`
	IsAuthenticated bool      `json:"is_authenticated"`
	IsLoading       bool      `json:"-"`
	Error           string    `json:"-"`
}

// TokenPair is the upstream bearer token pair. It is never part of the
// persisted AuthSession snapshot; the token synchronizer mirrors it into the
// client-readable store and cookies separately.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
