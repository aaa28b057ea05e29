// Package calendar applies periods to instants and intervals in a named time
// zone.
package calendar

import (
	"fmt"
	"time"

	"github.com/svera/nanoperiod/internal/period"
	"github.com/svera/nanoperiod/internal/tz"
)

// Engine adds periods to instants. Months move along the civil calendar at
// the same local time of day, days keep the local wall-clock time across
// offset changes, and the duration is elapsed time.
type Engine struct {
	resolver tz.Resolver
	civil    Civil
}

// New returns an engine on the Gregorian calendar.
func New(resolver tz.Resolver) *Engine {
	return &Engine{resolver: resolver, civil: Gregorian{}}
}

// NewWithCivil returns an engine using a custom civil calendar.
func NewWithCivil(resolver tz.Resolver, civil Civil) *Engine {
	return &Engine{resolver: resolver, civil: civil}
}

// Add returns t displaced by p as observed in zone. The result keeps t's
// location.
func (e *Engine) Add(t time.Time, p period.Period, zone string) (time.Time, error) {
	offset, err := e.offset(t, zone)
	if err != nil {
		return time.Time{}, err
	}

	res := t
	if p.Months() != 0 {
		local := t.UTC().Add(offset)
		year, month, dd := local.Date()
		timeOfDay := local.Sub(time.Date(year, month, dd, 0, 0, 0, 0, time.UTC))
		year, month, dd = e.civil.AddMonths(year, month, dd, int(p.Months()))
		res = time.Date(year, month, dd, 0, 0, 0, 0, time.UTC).Add(-offset).Add(timeOfDay)
	}

	// The reference offset for the correction below is the one at the
	// original instant, not at the month-adjusted one.
	offset, err = e.offset(t, zone)
	if err != nil {
		return time.Time{}, err
	}

	// Days are flat 24 hour steps. AddDate on the UTC clock takes them without
	// overflowing a time.Duration.
	res = res.UTC().AddDate(0, 0, int(p.Days()))
	newOffset, err := e.offset(res, zone)
	if err != nil {
		return time.Time{}, err
	}
	if newOffset != offset {
		res = res.Add(offset - newOffset)
	}

	return res.Add(p.Duration()).In(t.Location()), nil
}

// Subtract returns t displaced by the negation of p.
func (e *Engine) Subtract(t time.Time, p period.Period, zone string) (time.Time, error) {
	return e.Add(t, p.Neg(), zone)
}

// AddInterval displaces both ends of i by p. Open and closed ends are kept.
func (e *Engine) AddInterval(i Interval, p period.Period, zone string) (Interval, error) {
	start, err := e.Add(i.Start, p, zone)
	if err != nil {
		return Interval{}, err
	}
	end, err := e.Add(i.End, p, zone)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end, StartOpen: i.StartOpen, EndOpen: i.EndOpen}, nil
}

// SubtractInterval displaces both ends of i by the negation of p.
func (e *Engine) SubtractInterval(i Interval, p period.Period, zone string) (Interval, error) {
	return e.AddInterval(i, p.Neg(), zone)
}

func (e *Engine) offset(t time.Time, zone string) (time.Duration, error) {
	seconds, err := e.resolver.Offset(t, zone)
	if err != nil {
		return 0, fmt.Errorf("resolving offset of %s: %w", zone, err)
	}
	return time.Duration(seconds) * time.Second, nil
}
