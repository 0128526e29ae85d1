package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleHealthCheck answers whether the store is reachable with a trivial
// round-trip query. No side effects.
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	var one int
	if err := h.db.GetContext(c.UserContext(), &one, "SELECT 1"); err != nil {
		log.Printf("Health check failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "ERROR",
			"db":     "disconnected",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"db":     "Connected",
	})
}
