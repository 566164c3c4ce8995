package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// fiberCookieWriter adapts a fiber context to the token.CookieWriter port.
// The token cookies are deliberately not HttpOnly: server-rendered pages and
// client code both read them, matching the client-readable contract.
type fiberCookieWriter struct {
	c      *fiber.Ctx
	secure bool
}

func (w *fiberCookieWriter) SetCookie(name, value string, maxAge time.Duration) {
	w.c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		Secure:   w.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (w *fiberCookieWriter) ClearCookie(name string) {
	w.c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		Secure:   w.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
