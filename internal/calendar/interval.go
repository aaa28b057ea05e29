package calendar

import (
	"fmt"
	"time"
)

// Interval is a span between two instants whose ends may each be open or
// closed.
type Interval struct {
	Start     time.Time
	End       time.Time
	StartOpen bool
	EndOpen   bool
}

// String writes the interval as "+start -> end+", using "-" instead of "+"
// for an open end.
func (i Interval) String() string {
	return fmt.Sprintf("%s%s -> %s%s",
		openMark(i.StartOpen), i.Start.Format(time.RFC3339Nano),
		i.End.Format(time.RFC3339Nano), openMark(i.EndOpen))
}

func openMark(open bool) string {
	if open {
		return "-"
	}
	return "+"
}
