package saved

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/period"
	"github.com/svera/nanoperiod/internal/webserver/model"
)

type createRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Period      period.Period `json:"period"`
}

func (h *Controller) Create(c *fiber.Ctx) error {
	req := createRequest{}
	if err := c.BodyParser(&req); err != nil {
		var parseErr *period.ParseError
		if errors.As(err, &parseErr) {
			return err
		}
		return fiber.ErrBadRequest
	}

	saved := &model.SavedPeriod{
		Name:        req.Name,
		Description: req.Description,
		Period:      req.Period,
	}
	if author, ok := c.Locals("Author").(string); ok {
		saved.Author = author
	}
	saved.Sanitize()
	if strings.TrimSpace(saved.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A name is required")
	}

	if err := h.repository.Create(saved); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}
