package period

import (
	"errors"
	"time"
)

var ErrDivideByZero = errors.New("divide by zero")

// Add sums the components of both periods.
func (p Period) Add(other Period) Period {
	return Period{
		months: p.months + other.months,
		days:   p.days + other.days,
		dur:    p.dur + other.dur,
	}
}

// Sub subtracts the components of other from those of p.
func (p Period) Sub(other Period) Period {
	return Period{
		months: p.months - other.months,
		days:   p.days - other.days,
		dur:    p.dur - other.dur,
	}
}

// Neg negates every component.
func (p Period) Neg() Period {
	return Period{months: -p.months, days: -p.days, dur: -p.dur}
}

// Scale multiplies every component by k.
func (p Period) Scale(k int64) Period {
	return Period{
		months: int32(int64(p.months) * k),
		days:   int32(int64(p.days) * k),
		dur:    time.Duration(int64(p.dur) * k),
	}
}

// ScaleFloat multiplies every component by k, truncating each product
// towards zero.
func (p Period) ScaleFloat(k float64) Period {
	return Period{
		months: int32(float64(p.months) * k),
		days:   int32(float64(p.days) * k),
		dur:    time.Duration(int64(k * float64(p.dur))),
	}
}

// Div divides every component by k using integer division.
func (p Period) Div(k int64) (Period, error) {
	if k == 0 {
		return Zero, ErrDivideByZero
	}
	return Period{
		months: int32(int64(p.months) / k),
		days:   int32(int64(p.days) / k),
		dur:    time.Duration(int64(p.dur) / k),
	}, nil
}

// DivFloat divides every component by k, truncating each quotient towards zero.
func (p Period) DivFloat(k float64) (Period, error) {
	if k == 0 {
		return Zero, ErrDivideByZero
	}
	return Period{
		months: int32(float64(p.months) / k),
		days:   int32(float64(p.days) / k),
		dur:    time.Duration(int64(float64(p.dur) / k)),
	}, nil
}

// PlusDuration adds d to the duration component.
func (p Period) PlusDuration(d time.Duration) Period {
	return Period{months: p.months, days: p.days, dur: p.dur + d}
}

// MinusDuration subtracts d from the duration component.
func (p Period) MinusDuration(d time.Duration) Period {
	return Period{months: p.months, days: p.days, dur: p.dur - d}
}

// DurationMinus computes d - p: the negated period with d added to its duration.
func DurationMinus(d time.Duration, p Period) Period {
	return Period{months: -p.months, days: -p.days, dur: d - p.dur}
}
