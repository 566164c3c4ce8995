package server

import (
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// respondError maps use-case errors onto HTTP responses. Upstream API errors
// pass their status and display message through; everything else is reduced
// to a generic message so transport details never leak to the browser.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	var apiErr *commerce.APIError
	switch {
	case errors.As(err, &apiErr):
		return c.Status(apiErr.StatusCode).JSON(fiber.Map{"message": apiErr.Message})
	case errors.Is(err, commerce.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Your session has expired. Please sign in again.",
		})
	case errors.Is(err, order.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Your cart is empty.",
		})
	default:
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": commerce.Message(err),
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}
