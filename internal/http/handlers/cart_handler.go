package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "greenleaf/internal/log"
	"greenleaf/internal/store"
)

type CartHandler struct {
	Stores *store.Manager
}

type cartItemReq struct {
	ProductID int    `json:"productId"`
	Option    string `json:"option"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cart := h.Stores.Cart(ensureSID(c))
	return c.JSON(cartView(cart))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	p, ok := lookupProduct(c, req.ProductID)
	if !ok {
		return nil
	}
	opt, ok := resolveOption(p, req.Option)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown option"})
	}

	cart := h.Stores.Cart(ensureSID(c))
	if err := cart.AddItem(p, opt, req.Quantity); err != nil {
		// In-memory cart updated; only the durable copy is behind.
		applog.Error(c, "cart.persist", err, map[string]any{"product": p.ID})
	}
	return c.JSON(cartView(cart))
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	p, ok := lookupProduct(c, req.ProductID)
	if !ok {
		return nil
	}
	opt, ok := resolveOption(p, req.Option)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown option"})
	}

	cart := h.Stores.Cart(ensureSID(c))
	if err := cart.UpdateQuantity(req.ProductID, opt, req.Quantity); err != nil {
		applog.Error(c, "cart.persist", err, map[string]any{"product": req.ProductID})
	}
	return c.JSON(cartView(cart))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var req cartItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	p, ok := lookupProduct(c, req.ProductID)
	if !ok {
		return nil
	}
	opt, ok := resolveOption(p, req.Option)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown option"})
	}

	cart := h.Stores.Cart(ensureSID(c))
	if err := cart.RemoveItem(req.ProductID, opt); err != nil {
		applog.Error(c, "cart.persist", err, map[string]any{"product": req.ProductID})
	}
	return c.JSON(cartView(cart))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cart := h.Stores.Cart(ensureSID(c))
	if err := cart.Clear(); err != nil {
		applog.Error(c, "cart.persist", err, nil)
	}
	return c.JSON(cartView(cart))
}
