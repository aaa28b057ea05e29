// Package period implements a calendar-relative displacement made of whole
// months, whole days and a nanosecond duration.
//
// The three components are independently signed and are never normalised into
// each other: 13 months stays 13 months and 30 days is not a month. For the same
// reason periods have no ordering, only equality.
package period

import (
	"time"
)

// Period holds a number of months, a number of days and a sub-day duration.
// Instances are immutable.
type Period struct {
	months int32
	days   int32
	dur    time.Duration
}

// Zero is the empty period.
var Zero = Period{}

// New creates a period from its components verbatim.
func New(months, days int32, d time.Duration) Period {
	return Period{months: months, days: days, dur: d}
}

// FromDuration creates a period holding only a duration.
func FromDuration(d time.Duration) Period {
	return Period{dur: d}
}

// FromNanoseconds creates a period holding a duration of ns nanoseconds.
func FromNanoseconds(ns int64) Period {
	return FromDuration(time.Duration(ns))
}

// Months returns the month component; years are folded into it.
func (p Period) Months() int32 {
	return p.months
}

// Days returns the day component; weeks are folded into it.
func (p Period) Days() int32 {
	return p.days
}

// Duration returns the sub-day duration component.
func (p Period) Duration() time.Duration {
	return p.dur
}

// IsZero reports whether all three components are zero.
func (p Period) IsZero() bool {
	return p == Zero
}

// Equal reports whether both periods have identical components. No calendar
// equivalence is implied, so 1 month never equals 30 days.
func (p Period) Equal(other Period) bool {
	return p.months == other.months && p.days == other.days && p.dur == other.dur
}
