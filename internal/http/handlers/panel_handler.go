package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/services"
)

type PanelHandler struct {
	Panel *services.PanelService
}

// Stats serves the aggregate counters shown on the admin/volunteer panel.
// GET /panel
func (h *PanelHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Panel.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
