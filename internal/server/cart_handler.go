package server

import (
	"github.com/gofiber/fiber/v2"
)

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleGetCart(c *fiber.Ctx) error {
	sess := s.session(c)
	return c.JSON(fiber.Map{"cart": sess.Cart.State()})
}

func (s *Server) handleAddCartItem(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ProductID == "" || req.VariantID == "" {
		return badRequest(c, "product_id and variant_id are required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess := s.session(c)

	// The line snapshots product and variant at insertion time, so the
	// catalog is consulted here, once.
	product, err := s.catalog.GetProduct(c.Context(), s.creds(c), req.ProductID)
	if err != nil {
		return s.respondError(c, err)
	}
	variant := product.FindVariant(req.VariantID)
	if variant == nil {
		return badRequest(c, "unknown variant")
	}

	result := sess.Cart.AddItem(c.Context(), *product, *variant, req.Quantity, acceptLanguage(c))

	status := fiber.StatusOK
	if !result.IsValid {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"result": result,
		"cart":   sess.Cart.State(),
		"toasts": sess.Toasts.List(),
	})
}

func (s *Server) handleUpdateCartItem(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ProductID == "" || req.VariantID == "" {
		return badRequest(c, "product_id and variant_id are required")
	}

	sess := s.session(c)
	result := sess.Cart.UpdateQuantity(c.Context(), req.ProductID, req.VariantID, req.Quantity, acceptLanguage(c))

	status := fiber.StatusOK
	if !result.IsValid {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"result": result,
		"cart":   sess.Cart.State(),
		"toasts": sess.Toasts.List(),
	})
}

func (s *Server) handleRemoveCartItem(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Cart.RemoveItem(c.Context(), c.Params("productID"), c.Params("variantID"), acceptLanguage(c))
	return c.JSON(fiber.Map{
		"cart":   sess.Cart.State(),
		"toasts": sess.Toasts.List(),
	})
}

func (s *Server) handleClearCart(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Cart.Clear(c.Context())
	return c.JSON(fiber.Map{"cart": sess.Cart.State()})
}
