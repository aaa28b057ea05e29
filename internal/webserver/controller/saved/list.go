package saved

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (h *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	saved, err := h.repository.List(page, h.config.ResultsPerPage)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}
