package timeutil

import (
	"regexp"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"
)

// ErrInvalidHHMM is returned when a clock string is not valid HH:MM.
var ErrInvalidHHMM = errors.New("timeutil: invalid HH:MM")

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidHHMM reports whether s is a 24h HH:MM clock string.
func ValidHHMM(s string) bool {
	return hhmmRegex.MatchString(s)
}

// ParseHHMM converts an HH:MM clock string to minute-of-day.
func ParseHHMM(s string) (int, error) {
	m := hhmmRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidHHMM
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

// MinuteOfDay returns t's minute-of-day (0..1439).
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WithinQuietHours reports whether now falls inside the [start, end) quiet
// window. start and end are HH:MM clock strings in now's location. A window
// with start after end wraps past midnight (e.g. 22:00-07:00). Invalid or
// empty bounds disable the window.
func WithinQuietHours(now time.Time, start, end string) bool {
	startMin, err := ParseHHMM(start)
	if err != nil {
		return false
	}
	endMin, err := ParseHHMM(end)
	if err != nil {
		return false
	}
	cur := MinuteOfDay(now)
	if startMin <= endMin {
		return cur >= startMin && cur < endMin
	}
	return cur >= startMin || cur < endMin
}

// NowInTZ returns now in the named IANA timezone, falling back to UTC when
// the name is empty or unknown.
func NowInTZ(now time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		return now.UTC()
	}
	return now.In(loc)
}

// LocalYMD returns the business day for now in the named timezone, pinned to
// UTC midnight. Companies in different timezones roll over to a new ledger
// day at their own local midnight.
func LocalYMD(now time.Time, tz string) time.Time {
	local := NowInTZ(now, tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// YMDString formats t as YYYY-MM-DD.
func YMDString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClampHour clamps h to 0..23, substituting def when out of range.
func ClampHour(h, def int) int {
	if h < 0 || h > 23 {
		return def
	}
	return h
}
