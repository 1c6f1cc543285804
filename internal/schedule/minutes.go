// Package schedule implements the calendar placement engine: it turns a
// flat task collection into positioned day, week, and month views. Every
// function here is pure and synchronous; the package performs no I/O and
// holds no state, so callers may invoke it from concurrent render passes
// without coordination.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the length of the 24-hour clock in minutes.
	MinutesPerDay = 24 * 60

	// DefaultDurationMinutes is assumed when a scheduled task has no end
	// time. Display only; nothing is reserved.
	DefaultDurationMinutes = 60
)

// ParseClock parses a strict "HH:MM" 24-hour clock string into minutes
// past midnight. Malformed input fails closed: ok is false and the caller
// routes the task to the anytime path instead of crashing the grid.
func ParseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// FormatClock renders minutes past midnight as a zero-padded "HH:MM"
// string, normalizing into [0, 24h).
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddClock adds delta minutes to a clock string, wrapping at 24 hours.
// ok is false when the input clock is malformed.
func AddClock(hhmm string, delta int) (string, bool) {
	mins, ok := ParseClock(hhmm)
	if !ok {
		return "", false
	}
	return FormatClock(mins + delta), true
}

// ClockSpan returns the number of minutes from start to end. An end
// earlier than the start is treated as spanning midnight, so the result
// is never negative. ok is false when either clock is malformed.
func ClockSpan(start, end string) (int, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return 0, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0, false
	}
	if e < s {
		e += MinutesPerDay
	}
	return e - s, true
}

// spanOrDefault computes the display duration for a scheduled task:
// the span to the end time when one is present and parseable, otherwise
// DefaultDurationMinutes.
func spanOrDefault(start string, end *string) int {
	if end == nil || *end == "" {
		return DefaultDurationMinutes
	}
	span, ok := ClockSpan(start, *end)
	if !ok {
		return DefaultDurationMinutes
	}
	return span
}
