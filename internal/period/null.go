package period

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// NATag is how a missing period is written.
const NATag = "NA"

// Null is a period that may be missing. Any operation involving a missing
// period yields a missing period.
type Null struct {
	Period Period
	Valid  bool
}

// NA is the missing period.
var NA = Null{}

// Some wraps a present period.
func Some(p Period) Null {
	return Null{Period: p, Valid: true}
}

// FromComponents builds a period from raw components, mapping the reserved
// pattern (MinInt32, MinInt32, MinInt64) used by foreign data to NA.
func FromComponents(months, days int32, ns int64) Null {
	if months == math.MinInt32 && days == math.MinInt32 && ns == math.MinInt64 {
		return NA
	}
	return Some(New(months, days, time.Duration(ns)))
}

// ParseNull is like Parse but reads an empty string or NATag as NA.
func ParseNull(text string) (Null, error) {
	if text == "" || text == NATag {
		return NA, nil
	}
	p, err := Parse(text)
	if err != nil {
		return NA, err
	}
	return Some(p), nil
}

func (n Null) IsNA() bool {
	return !n.Valid
}

func (n Null) String() string {
	if !n.Valid {
		return NATag
	}
	return n.Period.String()
}

func (n Null) Months() (int32, bool) {
	return n.Period.months, n.Valid
}

func (n Null) Days() (int32, bool) {
	return n.Period.days, n.Valid
}

func (n Null) Duration() (time.Duration, bool) {
	return n.Period.dur, n.Valid
}

func (n Null) Add(other Null) Null {
	if !n.Valid || !other.Valid {
		return NA
	}
	return Some(n.Period.Add(other.Period))
}

func (n Null) Sub(other Null) Null {
	if !n.Valid || !other.Valid {
		return NA
	}
	return Some(n.Period.Sub(other.Period))
}

func (n Null) Neg() Null {
	if !n.Valid {
		return NA
	}
	return Some(n.Period.Neg())
}

func (n Null) Scale(k int64) Null {
	if !n.Valid {
		return NA
	}
	return Some(n.Period.Scale(k))
}

func (n Null) ScaleFloat(k float64) Null {
	if !n.Valid {
		return NA
	}
	return Some(n.Period.ScaleFloat(k))
}

// Div divides a present period by k. Division by zero is an error even when
// n is missing.
func (n Null) Div(k int64) (Null, error) {
	if k == 0 {
		return NA, ErrDivideByZero
	}
	if !n.Valid {
		return NA, nil
	}
	p, err := n.Period.Div(k)
	return Some(p), err
}

func (n Null) DivFloat(k float64) (Null, error) {
	if k == 0 {
		return NA, ErrDivideByZero
	}
	if !n.Valid {
		return NA, nil
	}
	p, err := n.Period.DivFloat(k)
	return Some(p), err
}

// Equal compares two periods. The second result is false when either side is
// missing, in which case the comparison has no answer.
func (n Null) Equal(other Null) (equal bool, valid bool) {
	if !n.Valid || !other.Valid {
		return false, false
	}
	return n.Period.Equal(other.Period), true
}

func (n Null) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Period.String())
}

func (n *Null) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = NA
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseNull(text)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
