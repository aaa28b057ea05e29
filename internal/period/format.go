package period

import (
	"database/sql/driver"
	"fmt"

	"github.com/svera/nanoperiod/internal/nanoduration"
)

// String renders p in its canonical form "<months>m<days>d/<duration>", which
// Parse reads back to an identical period.
func (p Period) String() string {
	return fmt.Sprintf("%dm%dd/%s", p.months, p.days, nanoduration.Format(p.dur))
}

// Format is the function form of Period.String.
func Format(p Period) string {
	return p.String()
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value stores the period in its canonical text form.
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan reads a period stored by Value.
func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into a period", src)
	}
}
