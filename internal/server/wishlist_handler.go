package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleGetWishlist(c *fiber.Ctx) error {
	sess := s.session(c)
	return c.JSON(fiber.Map{"wishlist": sess.Wishlist.State()})
}

func (s *Server) handleToggleWishlist(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ProductID == "" {
		return badRequest(c, "product_id is required")
	}

	sess := s.session(c)

	product, err := s.catalog.GetProduct(c.Context(), s.creds(c), req.ProductID)
	if err != nil {
		return s.respondError(c, err)
	}

	added := sess.Wishlist.Toggle(c.Context(), *product, acceptLanguage(c))
	return c.JSON(fiber.Map{
		"in_wishlist": added,
		"wishlist":    sess.Wishlist.State(),
		"toasts":      sess.Toasts.List(),
	})
}

func (s *Server) handleRemoveWishlistItem(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Wishlist.Remove(c.Context(), c.Params("productID"), acceptLanguage(c))
	return c.JSON(fiber.Map{
		"wishlist": sess.Wishlist.State(),
		"toasts":   sess.Toasts.List(),
	})
}

func (s *Server) handleClearWishlist(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Wishlist.Clear(c.Context())
	return c.JSON(fiber.Map{"wishlist": sess.Wishlist.State()})
}
