package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"greenleaf/internal/deals"
	"greenleaf/internal/domain"
	applog "greenleaf/internal/log"
	"greenleaf/internal/store"
)

type DealHandler struct {
	Stores *store.Manager
}

// List returns the deal catalog, optionally narrowed by ?type=.
func (h *DealHandler) List(c *fiber.Ctx) error {
	if t := c.Query("type"); t != "" {
		return c.JSON(deals.ByType(t))
	}
	return c.JSON(deals.All())
}

func (h *DealHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad deal id"})
	}
	d, ok := deals.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "deal not found"})
	}

	rule, _ := deals.RuleFor(d.ID)
	labels := make(map[string]string, len(rule.Slots))
	for _, slot := range rule.Slots {
		labels[slot] = deals.SlotLabel(slot, d.ID)
	}
	return c.JSON(fiber.Map{
		"deal":       d,
		"slots":      rule.Slots,
		"slotLabels": labels,
		"selections": deals.InitialSelections(d),
	})
}

type dealAddReq struct {
	Selections domain.Selections `json:"selections"`
	Quantities map[string]int    `json:"quantities"`
}

// Add prices a completed bundle selection and puts the resulting line items
// into the cart. Incomplete selections are rejected before any cart mutation.
func (h *DealHandler) Add(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad deal id"})
	}
	d, ok := deals.ByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "deal not found"})
	}

	var req dealAddReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}

	items, err := deals.BundleItems(d, req.Selections, req.Quantities)
	if err != nil {
		if errors.Is(err, deals.ErrIncompleteSelection) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "please choose a product for every slot"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cart := h.Stores.Cart(ensureSID(c))
	for _, li := range items {
		if err := cart.AddLine(li); err != nil {
			applog.Error(c, "cart.persist", err, map[string]any{"deal": d.ID})
		}
	}

	applog.Audit(c, "deal.add", map[string]any{"deal": d.ID, "bundle": items[0].Bundle.BundleID})
	return c.JSON(fiber.Map{
		"cart":          cartView(cart),
		"originalPrice": deals.OriginalPrice(d, req.Selections),
		"bundlePrice":   d.Price,
	})
}
