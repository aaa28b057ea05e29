package batch_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/svera/nanoperiod/internal/batch"
	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/period"
	"github.com/svera/nanoperiod/internal/tz"
)

func TestRecycle(t *testing.T) {
	var cases = []struct {
		name     string
		lengths  []int
		expected int
		err      error
	}{
		{"Same lengths", []int{3, 3}, 3, nil},
		{"Scalar recycled", []int{1, 4, 1}, 4, nil},
		{"Multiple recycled", []int{2, 6}, 6, nil},
		{"Empty input", []int{0, 5}, 0, nil},
		{"Not a multiple", []int{2, 3}, 0, batch.ErrLengthMismatch},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got, err := batch.Recycle(tcase.lengths...)
			if !errors.Is(err, tcase.err) {
				t.Errorf("Expected error %v, got %v", tcase.err, err)
			}
			if got != tcase.expected {
				t.Errorf("Expected %d, got %d", tcase.expected, got)
			}
		})
	}
}

func TestParseAndFormatAll(t *testing.T) {
	parsed, err := batch.ParseAll([]string{"1m", "NA", "", "2d/01:00:00"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []string{"1m0d/00:00:00", "NA", "NA", "0m2d/01:00:00"}
	got := batch.FormatAll(parsed)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected element %d to be %q, got %q", i, expected[i], got[i])
		}
	}

	var parseErr *period.ParseError
	if _, err := batch.ParseAll([]string{"1d", "1x"}); !errors.As(err, &parseErr) {
		t.Errorf("Expected a parse error, got %v", err)
	}
}

func TestAddToInstants(t *testing.T) {
	mapper := batch.NewMapper(calendar.New(tz.NewDatabase()), 2)
	base := time.Date(2023, 1, 31, 12, 0, 0, 0, time.UTC)

	instants := []sql.NullTime{
		{Time: base, Valid: true},
		{},
		{Time: base.AddDate(0, 0, 1), Valid: true},
		{Time: base.AddDate(0, 0, 2), Valid: true},
	}
	periods := []period.Null{period.Some(period.New(0, 1, 0)), period.NA}

	got, err := mapper.AddToInstants(context.Background(), instants, periods, []string{"UTC"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []sql.NullTime{
		{Time: base.AddDate(0, 0, 1), Valid: true},
		{},
		{Time: base.AddDate(0, 0, 2), Valid: true},
		{},
	}
	assertNullTimes(t, expected, got)

	back, err := mapper.SubtractFromInstants(context.Background(), got, periods, []string{"UTC"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertNullTimes(t, []sql.NullTime{instants[0], {}, instants[2], {}}, back)
}

func TestAddToInstantsErrors(t *testing.T) {
	mapper := batch.NewMapper(calendar.New(tz.NewDatabase()), 0)
	instants := []sql.NullTime{{Time: time.Now(), Valid: true}}
	periods := []period.Null{period.Some(period.New(0, 1, 0))}

	t.Run("Lengths not multiples", func(t *testing.T) {
		_, err := mapper.AddToInstants(context.Background(), append(instants, instants...), periods, []string{"UTC", "UTC", "UTC"})
		if !errors.Is(err, batch.ErrLengthMismatch) {
			t.Errorf("Expected %v, got %v", batch.ErrLengthMismatch, err)
		}
	})

	t.Run("Unknown zone", func(t *testing.T) {
		_, err := mapper.AddToInstants(context.Background(), instants, periods, []string{"Nowhere/Special"})
		var zoneErr *tz.UnknownZoneError
		if !errors.As(err, &zoneErr) {
			t.Errorf("Expected an unknown zone error, got %v", err)
		}
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := mapper.AddToInstants(ctx, instants, periods, []string{"UTC"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected %v, got %v", context.Canceled, err)
		}
	})
}

func TestAddToIntervals(t *testing.T) {
	mapper := batch.NewMapper(calendar.New(tz.NewDatabase()), 4)
	ival := calendar.Interval{
		Start:     time.Date(2023, 3, 11, 12, 0, 0, 0, time.UTC),
		End:       time.Date(2023, 3, 12, 12, 0, 0, 0, time.UTC),
		StartOpen: true,
	}
	intervals := []sql.Null[calendar.Interval]{{V: ival, Valid: true}, {}}
	periods := []period.Null{period.Some(period.New(0, 0, time.Hour))}

	got, err := mapper.AddToIntervals(context.Background(), intervals, periods, []string{"UTC"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 intervals, got %d", len(got))
	}
	if !got[0].Valid || !got[0].V.StartOpen || got[0].V.EndOpen {
		t.Errorf("Expected a valid interval keeping its openness, got %+v", got[0])
	}
	if !got[0].V.Start.Equal(ival.Start.Add(time.Hour)) || !got[0].V.End.Equal(ival.End.Add(time.Hour)) {
		t.Errorf("Expected interval shifted by one hour, got %s", got[0].V)
	}
	if got[1].Valid {
		t.Errorf("Expected missing interval, got %+v", got[1])
	}

	back, err := mapper.SubtractFromIntervals(context.Background(), got, periods, []string{"UTC"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !back[0].V.Start.Equal(ival.Start) || !back[0].V.End.Equal(ival.End) {
		t.Errorf("Expected %s, got %s", ival, back[0].V)
	}
}

func TestReadLines(t *testing.T) {
	appFS := afero.NewMemMapFs()
	if err := afero.WriteFile(appFS, "periods.txt", []byte("1m\n\n  2d/01:00:00 \nNA\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := batch.ReadLines(appFS, "periods.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []string{"1m", "2d/01:00:00", "NA"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Expected line %d to be %q, got %q", i, expected[i], lines[i])
		}
	}

	if _, err := batch.ReadLines(appFS, "missing.txt"); err == nil {
		t.Errorf("Expected an error reading a missing file")
	}
}

func assertNullTimes(t *testing.T, expected, got []sql.NullTime) {
	t.Helper()
	if len(expected) != len(got) {
		t.Fatalf("Expected %d instants, got %d", len(expected), len(got))
	}
	for i := range expected {
		if expected[i].Valid != got[i].Valid || !expected[i].Time.Equal(got[i].Time) {
			t.Errorf("Expected element %d to be %+v, got %+v", i, expected[i], got[i])
		}
	}
}
