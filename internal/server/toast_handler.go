package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleListToasts(c *fiber.Ctx) error {
	sess := s.session(c)
	return c.JSON(fiber.Map{"toasts": sess.Toasts.List()})
}

func (s *Server) handleRemoveToast(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Toasts.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleClearToasts(c *fiber.Ctx) error {
	sess := s.session(c)
	sess.Toasts.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
