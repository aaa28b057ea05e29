package periods

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/period"
)

// Detail describes the period given in the "text" query parameter, or in
// the "iso" one when written as an ISO-8601 period.
func (h *Controller) Detail(c *fiber.Ctx) error {
	var (
		p   period.Period
		err error
	)

	if iso := c.Query("iso"); iso != "" {
		p, err = period.FromISO(iso)
	} else {
		p, err = period.Parse(c.Query("text"))
	}
	if err != nil {
		return err
	}

	return c.JSON(newDetail(p))
}
