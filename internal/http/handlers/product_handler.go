package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"greenleaf/internal/catalog"
)

type ProductHandler struct{}

// List returns the catalog, optionally narrowed by ?category= (matched
// case-insensitively).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		return c.JSON(catalog.ByCategory(cat))
	}
	return c.JSON(catalog.Products())
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad product id"})
	}
	p, ok := catalog.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}
