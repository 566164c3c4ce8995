package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localSessionID = "session_id"

// sessionCookieMaxAge keeps anonymous carts around as long as a browser's
// local storage would have.
const sessionCookieMaxAge = 30 * 24 * time.Hour

// sessionMiddleware assigns every browser a stable session id cookie and
// makes it available to handlers.
func (s *Server) sessionMiddleware(c *fiber.Ctx) error {
	sid := c.Cookies(s.cfg.Session.CookieName)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     s.cfg.Session.CookieName,
			Value:    sid,
			Path:     "/",
			MaxAge:   int(sessionCookieMaxAge.Seconds()),
			Expires:  time.Now().Add(sessionCookieMaxAge),
			HTTPOnly: true,
			Secure:   s.cfg.Server.CookieSecure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals(localSessionID, sid)
	return c.Next()
}

// acceptLanguage returns the raw Accept-Language header; the i18n layer
// negotiates against it directly.
func acceptLanguage(c *fiber.Ctx) string {
	return c.Get(fiber.HeaderAcceptLanguage)
}
