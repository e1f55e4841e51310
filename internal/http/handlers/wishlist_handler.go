package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "greenleaf/internal/log"
	"greenleaf/internal/store"
)

type WishlistHandler struct {
	Stores *store.Manager
}

type wishlistReq struct {
	ProductID int    `json:"productId"`
	Option    string `json:"option"`
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	w := h.Stores.Wishlist(ensureSID(c))
	return c.JSON(fiber.Map{"items": w.Items(), "count": w.Count()})
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	var req wishlistReq
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

	w := h.Stores.Wishlist(ensureSID(c))
	if err := w.Add(p, opt); err != nil {
		applog.Error(c, "wishlist.persist", err, map[string]any{"product": p.ID})
	}
	return c.JSON(fiber.Map{"items": w.Items(), "count": w.Count()})
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	var req wishlistReq
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

	w := h.Stores.Wishlist(ensureSID(c))
	if err := w.Remove(req.ProductID, opt); err != nil {
		applog.Error(c, "wishlist.persist", err, map[string]any{"product": req.ProductID})
	}
	return c.JSON(fiber.Map{"items": w.Items(), "count": w.Count()})
}

func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	w := h.Stores.Wishlist(ensureSID(c))
	if err := w.Clear(); err != nil {
		applog.Error(c, "wishlist.persist", err, nil)
	}
	return c.JSON(fiber.Map{"items": w.Items(), "count": w.Count()})
}
