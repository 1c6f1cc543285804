package schedule

import (
	"strings"
	"time"
)

// dateKeyLayout is the canonical form every date-like value reduces to.
const dateKeyLayout = "2006-01-02"

// NormalizeDateKey reduces a date-like value (bare date, date+"T"+time with
// optional zone, or date+space+time) to a canonical "YYYY-MM-DD" key.
// Normalization is idempotent. ok is false for unparseable input; such
// tasks must be excluded from day bucketing rather than guessed onto the
// wrong day.
func NormalizeDateKey(raw string) (string, bool) {
	s := raw
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	if len(s) > 10 {
		s = s[:10]
	}

	if _, err := time.Parse(dateKeyLayout, s); err != nil {
		return "", false
	}
	return s, true
}

// DayKeyOf formats a time as a canonical date key.
func DayKeyOf(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDayKey parses a canonical date key back into a time.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dateKeyLayout, key)
}
