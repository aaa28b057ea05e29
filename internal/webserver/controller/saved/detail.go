package saved

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Controller) Detail(c *fiber.Ctx) error {
	saved, err := h.repository.FindBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(saved)
}
