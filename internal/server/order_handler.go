package server

import (
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleCheckout(c *fiber.Ctx) error {
	var input order.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	sess := s.session(c)
	authUC := s.authFor(c, sess)
	authUC.EnsureFresh(c.Context())

	created, err := s.orders.Checkout(c.Context(), authUC, sess.Cart, &input)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": created})
}

func (s *Server) handleListOrders(c *fiber.Ctx) error {
	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	orders, err := s.orders.ListUserOrders(c.Context(), authUC)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (s *Server) handleOrder(c *fiber.Ctx) error {
	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	o, err := s.orders.GetOrder(c.Context(), authUC, c.Params("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"order": o})
}

func (s *Server) handleOrderByNumber(c *fiber.Ctx) error {
	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	o, err := s.orders.GetOrderByNumber(c.Context(), authUC, c.Params("number"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"order": o})
}

func (s *Server) handlePresignUpload(c *fiber.Ctx) error {
	var input struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
	}
	if err := c.BodyParser(&input); err != nil || input.Filename == "" {
		return badRequest(c, "filename is required")
	}

	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	url, err := s.orders.PresignUpload(c.Context(), authUC, input.Filename, input.ContentType)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
