package calendar

import (
	"time"

	"github.com/rickb777/date/v2"
)

// Civil adds whole months to a (year, month, day) date.
type Civil interface {
	AddMonths(year int, month time.Month, day, months int) (int, time.Month, int)
}

// Gregorian is the proleptic Gregorian calendar. Days that do not exist in the
// target month roll forward into the next one, so January 31st plus one month
// is March 3rd (or 2nd in leap years), as with time.Time.AddDate.
type Gregorian struct{}

func (Gregorian) AddMonths(year int, month time.Month, day, months int) (int, time.Month, int) {
	return date.New(year, month, day).AddDate(0, months, 0).Date()
}
