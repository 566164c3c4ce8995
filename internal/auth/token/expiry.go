package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NeedsRefresh reports whether the access token expires within leeway. The
// token is parsed without signature verification; only the upstream verifies
// tokens, we just peek at the expiry to refresh before eating a 401.
// Unparseable tokens report true so the refresh path decides what to do.
func NeedsRefresh(accessToken string, leeway time.Duration) bool {
	if accessToken == "" {
		return true
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Until(exp.Time) < leeway
}
