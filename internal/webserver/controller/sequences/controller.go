package sequences

import (
	"time"

	"github.com/svera/nanoperiod/internal/period"
)

type generator interface {
	Bounded(from, to time.Time, by period.Period, zone string) ([]time.Time, error)
	Counted(from time.Time, by period.Period, n int, zone string) ([]time.Time, error)
}

type Controller struct {
	generator   generator
	defaultZone string
}

func NewController(generator generator, defaultZone string) *Controller {
	return &Controller{
		generator:   generator,
		defaultZone: defaultZone,
	}
}
