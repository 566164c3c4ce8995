package server

import (
	"github.com/fekuna/omnipos-storefront-service/internal/commerce"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) creds(c *fiber.Ctx) commerce.Credentials {
	return s.authFor(c, s.session(c))
}

func listFilters(c *fiber.Ctx) *commerce.ProductFilters {
	return &commerce.ProductFilters{
		CategorySlug: c.Query("category"),
		BrandSlug:    c.Query("brand"),
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
		Page:         c.QueryInt("page", 1),
		PageSize:     c.QueryInt("page_size", 20),
	}
}

func (s *Server) handleListProducts(c *fiber.Ctx) error {
	products, total, err := s.catalog.ListProducts(c.Context(), s.creds(c), listFilters(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (s *Server) handleFeaturedProducts(c *fiber.Ctx) error {
	filters := listFilters(c)
	filters.Featured = true
	products, total, err := s.catalog.ListProducts(c.Context(), s.creds(c), filters)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (s *Server) handleNewProducts(c *fiber.Ctx) error {
	filters := listFilters(c)
	filters.New = true
	products, total, err := s.catalog.ListProducts(c.Context(), s.creds(c), filters)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (s *Server) handleProduct(c *fiber.Ctx) error {
	product, err := s.catalog.GetProduct(c.Context(), s.creds(c), c.Params("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (s *Server) handleProductBySlug(c *fiber.Ctx) error {
	product, err := s.catalog.GetProductBySlug(c.Context(), s.creds(c), c.Params("slug"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (s *Server) handleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "q is required")
	}
	products, total, err := s.catalog.SearchProducts(c.Context(), s.creds(c), query, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products, "total": total})
}

func (s *Server) handleCategories(c *fiber.Ctx) error {
	categories, err := s.catalog.ListCategories(c.Context(), s.creds(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (s *Server) handleBrands(c *fiber.Ctx) error {
	brands, err := s.catalog.ListBrands(c.Context(), s.creds(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"brands": brands})
}
