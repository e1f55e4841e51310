package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenleaf/internal/catalog"
	"greenleaf/internal/domain"
	"greenleaf/internal/store"
)

// ensureSID pins a session id cookie; each session gets its own cart and
// wishlist slot.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// resolveOption maps an option label from the request onto the product's own
// price options. An empty label means the base price.
func resolveOption(p domain.Product, label string) (*domain.PriceOption, bool) {
	if label == "" {
		return nil, true
	}
	opt, ok := p.Option(label)
	if !ok {
		return nil, false
	}
	return &opt, true
}

func cartView(cart *store.Cart) fiber.Map {
	return fiber.Map{
		"items":   cart.Items(),
		"total":   cart.Total(),
		"count":   cart.Count(),
		"savings": cart.Savings(),
	}
}

func lookupProduct(c *fiber.Ctx, id int) (domain.Product, bool) {
	p, ok := catalog.ByID(id)
	if !ok {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return p, ok
}
