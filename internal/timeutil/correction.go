// Package timeutil holds small wall-clock helpers shared by the resolver
// and the display engine.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ApplyCorrection shifts a "HH:MM" time-of-day string by a signed number of
// minutes, wrapping across midnight (modulo 1440, no date tracking).
//
// Malformed input and a zero offset are identity: upstream data may be
// incomplete while a schedule is still loading, so the original string is
// handed back instead of an error.
func ApplyCorrection(t string, offsetMinutes int) string {
	if offsetMinutes == 0 {
		return t
	}
	total, ok := parseClock(t)
	if !ok {
		return t
	}

	total = (total + offsetMinutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(t string) (int, bool) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ParseClock exposes the "HH:MM" parser for callers that need the numeric
// components. ok is false for anything that is not exactly two in-range
// numeric fields.
func ParseClock(t string) (hour, minute int, ok bool) {
	total, ok := parseClock(t)
	if !ok {
		return 0, 0, false
	}
	return total / 60, total % 60, true
}
