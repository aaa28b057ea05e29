package period

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	iso "github.com/rickb777/period"
)

var errFractionalCalendar = errors.New("fractional years, months, weeks or days")

// ISO renders p as an ISO-8601 period such as "P1Y2M3DT4H". Whole years and
// weeks are folded out of months and days, and the duration is spread over
// hours, minutes and seconds, so the text is for interchange rather than the
// canonical form.
func (p Period) ISO() string {
	seconds := decimal.MustNew(int64(p.dur), 9).Trim(0)
	ip, err := iso.NewDecimal(
		decimal.Zero,
		decimal.MustNew(int64(p.months), 0),
		decimal.Zero,
		decimal.MustNew(int64(p.days), 0),
		decimal.Zero,
		decimal.Zero,
		seconds,
	)
	if err != nil {
		// only seconds may carry a fraction, so this cannot happen
		panic(err)
	}
	return ip.Normalise(true).String()
}

// FromISO reads an ISO-8601 period. Years become months, weeks become days and
// hours, minutes and seconds become the duration. Fractions are only accepted
// in the time fields.
func FromISO(text string) (Period, error) {
	ip, err := iso.Parse(text)
	if err != nil {
		return Zero, &ParseError{Text: text, Err: err}
	}
	for _, field := range []decimal.Decimal{ip.YearsDecimal(), ip.MonthsDecimal(), ip.WeeksDecimal(), ip.DaysDecimal()} {
		if !field.IsInt() {
			return Zero, &ParseError{Text: text, Err: errFractionalCalendar}
		}
	}

	months := int64(ip.Years())*12 + int64(ip.Months())
	days := int64(ip.DaysIncWeeks())
	d, precise := ip.OnlyHMS().Duration()
	if !precise && !ip.OnlyHMS().IsZero() {
		return Zero, &ParseError{Text: text, Err: fmt.Errorf("%s does not fit a duration", ip.OnlyHMS())}
	}
	if months < math.MinInt32 || months > math.MaxInt32 || days < math.MinInt32 || days > math.MaxInt32 {
		return Zero, &ParseError{Text: text, Err: errOverflow}
	}
	return Period{months: int32(months), days: int32(days), dur: d}, nil
}
