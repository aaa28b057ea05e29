// Package sequence generates series of instants spaced by a period.
package sequence

import (
	"errors"
	"fmt"
	"time"

	"github.com/svera/nanoperiod/internal/period"
)

var (
	ErrNonConverging  = errors.New("sequence does not converge towards its end")
	ErrNegativeLength = errors.New("sequence length cannot be negative")
	ErrTooLong        = errors.New("sequence exceeds the maximum length")
)

// Stepper displaces an instant by a period in a zone.
type Stepper interface {
	Add(t time.Time, p period.Period, zone string) (time.Time, error)
}

// Generator builds sequences with a Stepper. A MaxLength of zero or less
// means no limit.
type Generator struct {
	Stepper   Stepper
	MaxLength int
}

func NewGenerator(stepper Stepper, maxLength int) *Generator {
	return &Generator{Stepper: stepper, MaxLength: maxLength}
}

// Bounded returns from followed by every instant reached by repeatedly adding
// by, stopping before the first one that passes to. The direction of travel
// is fixed by the sign of to minus from. Each step must get strictly closer
// to to, otherwise ErrNonConverging is returned.
func (g *Generator) Bounded(from, to time.Time, by period.Period, zone string) ([]time.Time, error) {
	res := []time.Time{from}
	forward := !to.Before(from)
	dist := absDuration(to.Sub(from))

	for {
		next, err := g.Stepper.Add(res[len(res)-1], by, zone)
		if err != nil {
			return nil, err
		}
		if forward && next.After(to) || !forward && next.Before(to) {
			break
		}
		res = append(res, next)
		if g.exceeded(len(res)) {
			return nil, fmt.Errorf("%w of %d", ErrTooLong, g.MaxLength)
		}

		previous := dist
		dist = absDuration(to.Sub(next))
		if dist >= previous {
			return nil, fmt.Errorf("%w: stepping by %s from %s", ErrNonConverging, by, from.Format(time.RFC3339Nano))
		}
	}
	return res, nil
}

// Counted returns n instants starting at from, each one the previous
// displaced by by. A length of zero still yields from alone.
func (g *Generator) Counted(from time.Time, by period.Period, n int, zone string) ([]time.Time, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if g.exceeded(n) {
		return nil, fmt.Errorf("%w of %d", ErrTooLong, g.MaxLength)
	}

	res := make([]time.Time, 1, max(n, 1))
	res[0] = from
	for i := 1; i < n; i++ {
		next, err := g.Stepper.Add(res[i-1], by, zone)
		if err != nil {
			return nil, err
		}
		res = append(res, next)
	}
	return res, nil
}

func (g *Generator) exceeded(length int) bool {
	return g.MaxLength > 0 && length > g.MaxLength
}

// absDuration saturates at the largest duration, as time.Time.Sub does.
func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		if d == -d {
			return time.Duration(1<<63 - 1)
		}
		return -d
	}
	return d
}
