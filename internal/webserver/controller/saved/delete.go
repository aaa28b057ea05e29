package saved

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Controller) Delete(c *fiber.Ctx) error {
	if err := h.repository.Delete(c.Params("slug")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
