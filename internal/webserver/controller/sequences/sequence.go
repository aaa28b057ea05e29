package sequences

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/period"
)

type sequenceRequest struct {
	From   time.Time     `json:"from"`
	To     *time.Time    `json:"to"`
	Length *int          `json:"length"`
	By     period.Period `json:"by"`
	Zone   string        `json:"zone"`
}

// Sequence steps from an instant by a period, up to an end instant or for a
// number of elements.
func (h *Controller) Sequence(c *fiber.Ctx) error {
	req := sequenceRequest{}
	if err := c.BodyParser(&req); err != nil {
		var parseErr *period.ParseError
		if errors.As(err, &parseErr) {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid instant")
	}
	if (req.To == nil) == (req.Length == nil) {
		return fiber.NewError(fiber.StatusBadRequest, "Provide either an end or a length, not both")
	}
	if req.Zone == "" {
		req.Zone = h.defaultZone
	}

	var (
		instants []time.Time
		err      error
	)
	if req.To != nil {
		instants, err = h.generator.Bounded(req.From, *req.To, req.By, req.Zone)
	} else {
		instants, err = h.generator.Counted(req.From, req.By, *req.Length, req.Zone)
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"instants": instants})
}
