package period_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/svera/nanoperiod/internal/period"
)

func TestNAPropagates(t *testing.T) {
	p := period.Some(period.New(1, 1, time.Second))

	var cases = []struct {
		name string
		got  period.Null
	}{
		{"Add with NA on the right", p.Add(period.NA)},
		{"Add with NA on the left", period.NA.Add(p)},
		{"Sub", p.Sub(period.NA)},
		{"Neg", period.NA.Neg()},
		{"Scale", period.NA.Scale(2)},
		{"ScaleFloat", period.NA.ScaleFloat(2.5)},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if !tcase.got.IsNA() {
				t.Errorf("Expected NA, got %s", tcase.got)
			}
		})
	}

	if got, err := period.NA.Div(2); err != nil || !got.IsNA() {
		t.Errorf("Expected NA without error, got %s, %v", got, err)
	}
	if _, err := period.NA.Div(0); !errors.Is(err, period.ErrDivideByZero) {
		t.Errorf("Expected divide by zero error, got %v", err)
	}
	if _, valid := p.Equal(period.NA); valid {
		t.Error("Expected comparison with NA to be invalid")
	}
}

func TestNullAccessors(t *testing.T) {
	p := period.Some(period.New(3, 4, time.Minute))
	if m, ok := p.Months(); !ok || m != 3 {
		t.Errorf("Expected 3 months, got %d (%v)", m, ok)
	}
	if d, ok := p.Days(); !ok || d != 4 {
		t.Errorf("Expected 4 days, got %d (%v)", d, ok)
	}
	if d, ok := p.Duration(); !ok || d != time.Minute {
		t.Errorf("Expected one minute, got %v (%v)", d, ok)
	}
	if _, ok := period.NA.Months(); ok {
		t.Error("Expected NA months to be missing")
	}
	if period.NA.String() != period.NATag {
		t.Errorf("Expected %q, got %q", period.NATag, period.NA.String())
	}
}

func TestFromComponents(t *testing.T) {
	if got := period.FromComponents(math.MinInt32, math.MinInt32, math.MinInt64); !got.IsNA() {
		t.Errorf("Expected the reserved pattern to be NA, got %s", got)
	}
	if got := period.FromComponents(math.MinInt32, 0, 0); got.IsNA() {
		t.Error("Expected a partial match of the reserved pattern to be a valid period")
	}
}

func TestNullJSON(t *testing.T) {
	input := []period.Null{period.Some(period.New(1, 2, time.Second)), period.NA}
	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != `["1m2d/00:00:01",null]` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var output []period.Null
	if err := json.Unmarshal([]byte(`["1y","NA",null]`), &output); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(output) != 3 || !output[0].Period.Equal(period.New(12, 0, 0)) || !output[1].IsNA() || !output[2].IsNA() {
		t.Errorf("Unexpected periods %v", output)
	}

	if err := json.Unmarshal([]byte(`["bogus"]`), &output); err == nil {
		t.Error("Expected an error for an unparseable period")
	}
}
