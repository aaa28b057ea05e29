// Package nanoduration reads and writes time.Duration values in clock notation,
// e.g. "12:30:00" or "-00:00:01.000000001".
package nanoduration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSyntax = errors.New("expected [-]HH:MM:SS[.fraction]")
	ErrRange  = errors.New("duration out of range")
)

var clockRegexp = regexp.MustCompile(`^([+-]?)(\d+):(\d{2}):(\d{2})(?:\.(\d{1,9}))?$`)

// Parse reads a duration written as hours, minutes and seconds separated by
// colons, optionally followed by up to nine fractional digits.
// Minutes and seconds must be below 60; hours are unbounded up to the range of time.Duration.
func Parse(s string) (time.Duration, error) {
	m := clockRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	hours, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil || hours > math.MaxInt64/uint64(time.Hour) {
		return 0, fmt.Errorf("%q: %w", s, ErrRange)
	}
	minutes, _ := strconv.ParseUint(m[3], 10, 64)
	seconds, _ := strconv.ParseUint(m[4], 10, 64)
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	var nanos uint64
	if m[5] != "" {
		frac := m[5] + strings.Repeat("0", 9-len(m[5]))
		nanos, _ = strconv.ParseUint(frac, 10, 64)
	}

	total := hours*uint64(time.Hour) + minutes*uint64(time.Minute) + seconds*uint64(time.Second) + nanos
	if m[1] == "-" {
		if total > 1<<63 {
			return 0, fmt.Errorf("%q: %w", s, ErrRange)
		}
		return time.Duration(-total), nil
	}
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("%q: %w", s, ErrRange)
	}
	return time.Duration(total), nil
}

// Format writes d in the notation accepted by Parse. Sub-second digits are
// printed in groups of three and only as far as needed to be exact.
func Format(d time.Duration) string {
	var b strings.Builder
	u := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		u = -u
	}

	hours := u / uint64(time.Hour)
	u -= hours * uint64(time.Hour)
	minutes := u / uint64(time.Minute)
	u -= minutes * uint64(time.Minute)
	seconds := u / uint64(time.Second)
	nanos := u - seconds*uint64(time.Second)

	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	if nanos != 0 {
		frac := fmt.Sprintf("%09d", nanos)
		for strings.HasSuffix(frac, "000") {
			frac = frac[:len(frac)-3]
		}
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
