package instants

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/period"
)

type interval struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartOpen bool      `json:"startOpen"`
	EndOpen   bool      `json:"endOpen"`
}

type intervalsRequest struct {
	Intervals []*interval   `json:"intervals"`
	Periods   []period.Null `json:"periods"`
	Zones     []string      `json:"zones"`
	Subtract  bool          `json:"subtract"`
}

// Intervals adds periods to both ends of intervals elementwise, keeping
// whether each end is open.
func (h *Controller) Intervals(c *fiber.Ctx) error {
	req := intervalsRequest{}
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	intervals := make([]sql.Null[calendar.Interval], len(req.Intervals))
	for i, ival := range req.Intervals {
		if ival != nil {
			intervals[i] = sql.Null[calendar.Interval]{
				V:     calendar.Interval{Start: ival.Start, End: ival.End, StartOpen: ival.StartOpen, EndOpen: ival.EndOpen},
				Valid: true,
			}
		}
	}

	apply := h.mapper.AddToIntervals
	if req.Subtract {
		apply = h.mapper.SubtractFromIntervals
	}
	res, err := apply(c.UserContext(), intervals, req.Periods, h.zones(req.Zones))
	if err != nil {
		return err
	}

	output := make([]*interval, len(res))
	for i, ival := range res {
		if ival.Valid {
			output[i] = &interval{Start: ival.V.Start, End: ival.V.End, StartOpen: ival.V.StartOpen, EndOpen: ival.V.EndOpen}
		}
	}
	return c.JSON(fiber.Map{"intervals": output})
}
