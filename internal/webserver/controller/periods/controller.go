package periods

import (
	"github.com/svera/nanoperiod/internal/nanoduration"
	"github.com/svera/nanoperiod/internal/period"
)

type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

type detail struct {
	Text        string `json:"text"`
	Months      int32  `json:"months"`
	Days        int32  `json:"days"`
	Duration    string `json:"duration"`
	Nanoseconds int64  `json:"nanoseconds"`
	ISO         string `json:"iso"`
}

func newDetail(p period.Period) detail {
	return detail{
		Text:        p.String(),
		Months:      p.Months(),
		Days:        p.Days(),
		Duration:    nanoduration.Format(p.Duration()),
		Nanoseconds: int64(p.Duration()),
		ISO:         p.ISO(),
	}
}
