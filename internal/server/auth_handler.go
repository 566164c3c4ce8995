package server

import (
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var input commerce.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return badRequest(c, "email and password are required")
	}

	sess := s.session(c)
	authUC := s.authFor(c, sess)

	user, err := authUC.Login(c.Context(), &input)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "session": authUC.Session()})
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var input commerce.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return badRequest(c, "email and password are required")
	}

	sess := s.session(c)
	authUC := s.authFor(c, sess)

	user, err := authUC.Register(c.Context(), &input)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "session": authUC.Session()})
}

func (s *Server) handleSocialLogin(c *fiber.Ctx) error {
	var input struct {
		User   model.AuthUser  `json:"user"`
		Tokens model.TokenPair `json:"tokens"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if input.User.ID == "" || input.Tokens.AccessToken == "" {
		return badRequest(c, "user and tokens are required")
	}

	sess := s.session(c)
	authUC := s.authFor(c, sess)
	authUC.SocialLogin(c.Context(), input.User, input.Tokens)
	return c.JSON(fiber.Map{"session": authUC.Session()})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess := s.session(c)
	authUC := s.authFor(c, sess)
	authUC.Logout(c.Context())
	return c.JSON(fiber.Map{"session": authUC.Session()})
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	sess := s.session(c)
	authUC := s.authFor(c, sess)
	if err := authUC.Refresh(c.Context()); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"session": authUC.Session()})
}

func (s *Server) handleAuthSession(c *fiber.Ctx) error {
	sess := s.session(c)
	return c.JSON(fiber.Map{"session": sess.Auth.Session()})
}

func (s *Server) handleForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return badRequest(c, "email is required")
	}

	authUC := s.authFor(c, s.session(c))
	if err := authUC.ForgotPassword(c.Context(), input.Email); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleResetPassword(c *fiber.Ctx) error {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil || input.Token == "" || input.Password == "" {
		return badRequest(c, "token and password are required")
	}

	authUC := s.authFor(c, s.session(c))
	if err := authUC.ResetPassword(c.Context(), input.Token, input.Password); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleChangePassword(c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil || input.CurrentPassword == "" || input.NewPassword == "" {
		return badRequest(c, "current and new passwords are required")
	}

	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())
	if err := authUC.ChangePassword(c.Context(), input.CurrentPassword, input.NewPassword); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	user, err := authUC.GetProfile(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return badRequest(c, "invalid request body")
	}

	authUC := s.authFor(c, s.session(c))
	authUC.EnsureFresh(c.Context())

	user, err := authUC.UpdateProfile(c.Context(), data)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
