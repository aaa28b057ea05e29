package instants

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/period"
)

type instantsRequest struct {
	Instants []*time.Time  `json:"instants"`
	Periods  []period.Null `json:"periods"`
	Zones    []string      `json:"zones"`
	Subtract bool          `json:"subtract"`
}

// Instants adds periods to instants elementwise, recycling the shorter
// inputs. Null instants or periods give null results.
func (h *Controller) Instants(c *fiber.Ctx) error {
	req := instantsRequest{}
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	instants := make([]sql.NullTime, len(req.Instants))
	for i, t := range req.Instants {
		if t != nil {
			instants[i] = sql.NullTime{Time: *t, Valid: true}
		}
	}

	apply := h.mapper.AddToInstants
	if req.Subtract {
		apply = h.mapper.SubtractFromInstants
	}
	res, err := apply(c.UserContext(), instants, req.Periods, h.zones(req.Zones))
	if err != nil {
		return err
	}

	output := make([]*time.Time, len(res))
	for i := range res {
		if res[i].Valid {
			output[i] = &res[i].Time
		}
	}
	return c.JSON(fiber.Map{"instants": output})
}
