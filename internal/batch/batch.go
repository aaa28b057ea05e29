// Package batch applies period operations elementwise over slices, recycling
// shorter inputs and propagating missing values.
package batch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/period"
	"golang.org/x/sync/errgroup"
)

var ErrLengthMismatch = errors.New("longer input length is not a multiple of shorter input length")

// Applier displaces instants and intervals by a period in a zone.
type Applier interface {
	Add(t time.Time, p period.Period, zone string) (time.Time, error)
	AddInterval(i calendar.Interval, p period.Period, zone string) (calendar.Interval, error)
}

// Recycle returns the length of an elementwise result over inputs of the
// given lengths: zero if any of them is empty, the longest otherwise. Every
// length must divide the longest one.
func Recycle(lengths ...int) (int, error) {
	longest := 0
	for _, l := range lengths {
		if l == 0 {
			return 0, nil
		}
		longest = max(longest, l)
	}
	for _, l := range lengths {
		if longest%l != 0 {
			return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, longest, l)
		}
	}
	return longest, nil
}

// ParseAll parses every text. Empty texts and "NA" are missing periods.
func ParseAll(texts []string) ([]period.Null, error) {
	res := make([]period.Null, len(texts))
	for i, text := range texts {
		p, err := period.ParseNull(text)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		res[i] = p
	}
	return res, nil
}

func FormatAll(periods []period.Null) []string {
	res := make([]string, len(periods))
	for i, p := range periods {
		res[i] = p.String()
	}
	return res
}

// Mapper runs elementwise calendar arithmetic on up to Workers goroutines.
type Mapper struct {
	applier Applier
	workers int
}

// NewMapper returns a mapper. A workers value of zero or less means no limit.
func NewMapper(applier Applier, workers int) *Mapper {
	return &Mapper{applier: applier, workers: workers}
}

func (m *Mapper) AddToInstants(ctx context.Context, instants []sql.NullTime, periods []period.Null, zones []string) ([]sql.NullTime, error) {
	return m.instants(ctx, instants, periods, zones, false)
}

func (m *Mapper) SubtractFromInstants(ctx context.Context, instants []sql.NullTime, periods []period.Null, zones []string) ([]sql.NullTime, error) {
	return m.instants(ctx, instants, periods, zones, true)
}

func (m *Mapper) AddToIntervals(ctx context.Context, intervals []sql.Null[calendar.Interval], periods []period.Null, zones []string) ([]sql.Null[calendar.Interval], error) {
	return m.intervals(ctx, intervals, periods, zones, false)
}

func (m *Mapper) SubtractFromIntervals(ctx context.Context, intervals []sql.Null[calendar.Interval], periods []period.Null, zones []string) ([]sql.Null[calendar.Interval], error) {
	return m.intervals(ctx, intervals, periods, zones, true)
}

func (m *Mapper) instants(ctx context.Context, instants []sql.NullTime, periods []period.Null, zones []string, subtract bool) ([]sql.NullTime, error) {
	n, err := Recycle(len(instants), len(periods), len(zones))
	if err != nil {
		return nil, err
	}
	res := make([]sql.NullTime, n)
	err = m.each(ctx, n, func(i int) error {
		t, p := instants[i%len(instants)], periods[i%len(periods)]
		if !t.Valid || !p.Valid {
			return nil
		}
		if subtract {
			p = p.Neg()
		}
		added, err := m.applier.Add(t.Time, p.Period, zones[i%len(zones)])
		if err != nil {
			return fmt.Errorf("element %d: %w", i+1, err)
		}
		res[i] = sql.NullTime{Time: added, Valid: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (m *Mapper) intervals(ctx context.Context, intervals []sql.Null[calendar.Interval], periods []period.Null, zones []string, subtract bool) ([]sql.Null[calendar.Interval], error) {
	n, err := Recycle(len(intervals), len(periods), len(zones))
	if err != nil {
		return nil, err
	}
	res := make([]sql.Null[calendar.Interval], n)
	err = m.each(ctx, n, func(i int) error {
		ival, p := intervals[i%len(intervals)], periods[i%len(periods)]
		if !ival.Valid || !p.Valid {
			return nil
		}
		if subtract {
			p = p.Neg()
		}
		added, err := m.applier.AddInterval(ival.V, p.Period, zones[i%len(zones)])
		if err != nil {
			return fmt.Errorf("element %d: %w", i+1, err)
		}
		res[i] = sql.Null[calendar.Interval]{V: added, Valid: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// each calls fn for every index in [0, n), stopping at the first error or
// when ctx is done.
func (m *Mapper) each(ctx context.Context, n int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if m.workers > 0 {
		g.SetLimit(m.workers)
	}
	for i := 0; i < n && gctx.Err() == nil; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
