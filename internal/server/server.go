package server

import (
	"time"

	"github.com/fekuna/omnipos-storefront-service/config"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	authuc "github.com/fekuna/omnipos-storefront-service/internal/auth/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/auth/token"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Server wires the session stores, the upstream client and the use cases
// into the storefront HTTP API.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	sessions *session.Manager
	client   *commerce.Client
	catalog  catalog.UseCase
	orders   order.UseCase
	logger   logger.ZapLogger
}

func New(
	cfg *config.Config,
	sessions *session.Manager,
	client *commerce.Client,
	catalogUC catalog.UseCase,
	orderUC order.UseCase,
	log logger.ZapLogger,
) *Server {
	s := &Server{
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		cfg:      cfg,
		sessions: sessions,
		client:   client,
		catalog:  catalogUC,
		orders:   orderUC,
		logger:   log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(s.sessionMiddleware)

	api := s.app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.handleLogin)
	authGroup.Post("/register", s.handleRegister)
	authGroup.Post("/social", s.handleSocialLogin)
	authGroup.Post("/logout", s.handleLogout)
	authGroup.Post("/refresh", s.handleRefresh)
	authGroup.Post("/forgot-password", s.handleForgotPassword)
	authGroup.Post("/reset-password", s.handleResetPassword)
	authGroup.Post("/change-password", s.handleChangePassword)
	authGroup.Get("/session", s.handleAuthSession)
	authGroup.Get("/profile", s.handleGetProfile)
	authGroup.Put("/profile", s.handleUpdateProfile)

	api.Get("/products", s.handleListProducts)
	api.Get("/products/featured", s.handleFeaturedProducts)
	api.Get("/products/new", s.handleNewProducts)
	api.Get("/products/slug/:slug", s.handleProductBySlug)
	api.Get("/products/:id", s.handleProduct)
	api.Get("/search", s.handleSearch)
	api.Get("/categories", s.handleCategories)
	api.Get("/brands", s.handleBrands)

	api.Get("/cart", s.handleGetCart)
	api.Post("/cart/items", s.handleAddCartItem)
	api.Put("/cart/items", s.handleUpdateCartItem)
	api.Delete("/cart/items/:productID/:variantID", s.handleRemoveCartItem)
	api.Delete("/cart", s.handleClearCart)

	api.Get("/wishlist", s.handleGetWishlist)
	api.Post("/wishlist/toggle", s.handleToggleWishlist)
	api.Delete("/wishlist/:productID", s.handleRemoveWishlistItem)
	api.Delete("/wishlist", s.handleClearWishlist)

	api.Post("/orders", s.handleCheckout)
	api.Get("/orders", s.handleListOrders)
	api.Get("/orders/number/:number", s.handleOrderByNumber)
	api.Get("/orders/:id", s.handleOrder)
	api.Post("/uploads/presign", s.handlePresignUpload)

	api.Get("/toasts", s.handleListToasts)
	api.Delete("/toasts/:id", s.handleRemoveToast)
	api.Delete("/toasts", s.handleClearToasts)
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// session resolves the per-session store container for this request.
func (s *Server) session(c *fiber.Ctx) *session.Session {
	sid, _ := c.Locals(localSessionID).(string)
	return s.sessions.Get(c.Context(), sid)
}

// authFor assembles the request-scoped auth use case: the shared session
// store plus a token synchronizer carrying this request's cookie sink.
func (s *Server) authFor(c *fiber.Ctx, sess *session.Session) auth.UseCase {
	cookieSink := token.NewCookieSink(
		&fiberCookieWriter{c: c, secure: s.cfg.Server.CookieSecure},
		time.Duration(s.cfg.Session.TokenCookieMaxAgeDays)*24*time.Hour,
	)
	sync := token.NewSynchronizer(sess.ClientSink, cookieSink)
	return authuc.NewAuthUseCase(sess.Auth, s.client, sync, acceptLanguage(c), s.logger)
}
