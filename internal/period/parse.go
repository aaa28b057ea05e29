package period

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/svera/nanoperiod/internal/nanoduration"
)

var (
	errMissingUnit = errors.New("count without unit")
	errOverflow    = errors.New("component out of range")
)

// ParseError is returned when a text cannot be read as a period.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as a period", e.Text)
	}
	return fmt.Sprintf("cannot parse %q as a period: %s", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// designators lists the calendar units in the only order they may appear.
const designators = "ymwd"

// MustParse is like Parse but panics if the text cannot be parsed.
// Meant for setup code and tests, not user input.
func MustParse(text string) Period {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads a period written as
//
//	[<n>y][<n>m][<n>w][<n>d][/<duration>]
//
// where each count may carry a sign, years count as 12 months, weeks as 7 days
// and the duration is in clock notation (see nanoduration.Parse). When no
// duration is given it is zero. Text starting with "/", or looking like a bare
// clock time such as "12:00:00", is read as a duration alone. A count that is not
// followed by one of the expected unit letters starts the duration, so
// "1d12:00:00" is one day and twelve hours.
func Parse(text string) (Period, error) {
	if text == "" {
		return Zero, &ParseError{Text: text}
	}
	if text[0] == '/' {
		return withDuration(text, 0, 0, text[1:])
	}
	if len(text) > 2 && text[2] == ':' {
		return withDuration(text, 0, 0, text)
	}

	var months, days int64
	remaining := text
	next := 0
	for remaining != "" {
		if remaining[0] == '/' {
			return withDuration(text, months, days, remaining[1:])
		}

		n, rest, ok := scanCount(remaining)
		if !ok {
			return withDuration(text, months, days, remaining)
		}
		if rest == "" {
			return Zero, &ParseError{Text: text, Err: errMissingUnit}
		}

		i := strings.IndexByte(designators[next:], rest[0])
		if i < 0 {
			return withDuration(text, months, days, remaining)
		}
		next += i
		switch designators[next] {
		case 'y':
			months += 12 * n
		case 'm':
			months += n
		case 'w':
			days += 7 * n
		case 'd':
			days += n
		}
		next++
		remaining = rest[1:]
	}

	return build(text, months, days, 0)
}

func withDuration(text string, months, days int64, durText string) (Period, error) {
	d, err := nanoduration.Parse(durText)
	if err != nil {
		return Zero, &ParseError{Text: text, Err: err}
	}
	return build(text, months, days, d)
}

func build(text string, months, days int64, d time.Duration) (Period, error) {
	if months < math.MinInt32 || months > math.MaxInt32 || days < math.MinInt32 || days > math.MaxInt32 {
		return Zero, &ParseError{Text: text, Err: errOverflow}
	}
	return Period{months: int32(months), days: int32(days), dur: d}, nil
}

// scanCount reads an optionally signed decimal integer from the start of s.
func scanCount(s string) (int64, string, bool) {
	end := 0
	if s[0] == '-' || s[0] == '+' {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, s, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, s, false
	}
	return n, s[end:], true
}
