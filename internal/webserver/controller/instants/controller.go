package instants

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/period"
)

type mapper interface {
	AddToInstants(ctx context.Context, instants []sql.NullTime, periods []period.Null, zones []string) ([]sql.NullTime, error)
	SubtractFromInstants(ctx context.Context, instants []sql.NullTime, periods []period.Null, zones []string) ([]sql.NullTime, error)
	AddToIntervals(ctx context.Context, intervals []sql.Null[calendar.Interval], periods []period.Null, zones []string) ([]sql.Null[calendar.Interval], error)
	SubtractFromIntervals(ctx context.Context, intervals []sql.Null[calendar.Interval], periods []period.Null, zones []string) ([]sql.Null[calendar.Interval], error)
}

type Controller struct {
	mapper      mapper
	defaultZone string
}

// NewController returns a controller applying periods in defaultZone when
// a request names no zones.
func NewController(mapper mapper, defaultZone string) *Controller {
	return &Controller{
		mapper:      mapper,
		defaultZone: defaultZone,
	}
}

func (h *Controller) zones(zones []string) []string {
	if len(zones) == 0 {
		return []string{h.defaultZone}
	}
	return zones
}

// bodyError keeps period parse errors and reports anything else in the body
// as an invalid instant.
func bodyError(err error) error {
	var parseErr *period.ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid instant")
}
