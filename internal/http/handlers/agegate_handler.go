package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// AgeGateHandler keeps the 21+ confirmation flag. Purely presentational; it
// never touches the cart or wishlist stores.
type AgeGateHandler struct{}

const ageGateCookie = "age_verified"

func (h *AgeGateHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"verified": c.Cookies(ageGateCookie) == "true"})
}

func (h *AgeGateHandler) Verify(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     ageGateCookie,
		Value:    "true",
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"verified": true})
}
