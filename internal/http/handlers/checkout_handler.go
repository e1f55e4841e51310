package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"greenleaf/internal/checkout"
	applog "greenleaf/internal/log"
	"greenleaf/internal/store"
)

type CheckoutHandler struct {
	Stores   *store.Manager
	Checkout *checkout.Service
}

// Place validates the shipping form, relays the order to the fulfillment
// inbox, and reports the order number. The cart survives a failed relay so
// the customer can retry.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	var info checkout.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request body"})
	}
	if errs := info.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	cart := h.Stores.Cart(ensureSID(c))
	ord, err := h.Checkout.Place(cart, info)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "cart is empty"})
		}
		applog.Error(c, "checkout.relay", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to place order. Please try again."})
	}

	applog.Audit(c, "checkout.placed", map[string]any{"order": ord.Number, "total": ord.Total})
	return c.JSON(fiber.Map{
		"orderNumber": ord.Number,
		"total":       ord.Total,
		"discounts":   ord.Discounts,
		"delivery":    ord.Shipping.DeliveryWindow(),
	})
}
