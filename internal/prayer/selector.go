// Package prayer decides which prayer comes next and formats the countdown
// shown on the idle screen.
package prayer

import (
	"fmt"
	"time"

	"github.com/masjid-labs/muadhin/internal/model"
	"github.com/masjid-labs/muadhin/internal/timeutil"
)

// Instant is one prayer marker anchored to a concrete calendar day.
type Instant struct {
	Name model.PrayerName
	Time time.Time
}

// Instants builds the prayer instants for the schedule on the given day,
// in canonical order. Entries whose "HH:MM" string does not parse into
// exactly two numeric components are dropped.
func Instants(times model.PrayerTimeSet, day time.Time) []Instant {
	out := make([]Instant, 0, len(model.PrayerSequence))
	for _, name := range model.PrayerSequence {
		h, m, ok := timeutil.ParseClock(times[name])
		if !ok {
			continue
		}
		out = append(out, Instant{
			Name: name,
			Time: time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()),
		})
	}
	return out
}

// Next returns the next prayer strictly after now. When every prayer of the
// day has passed it wraps to tomorrow's Fajr. It returns nil only when the
// schedule has no parseable Fajr entry at all.
func Next(times model.PrayerTimeSet, now time.Time) *model.NextPrayer {
	for _, in := range Instants(times, now) {
		if in.Time.After(now) {
			return &model.NextPrayer{Name: in.Name, Instant: in.Time}
		}
	}

	h, m, ok := timeutil.ParseClock(times[model.Fajr])
	if !ok {
		return nil
	}
	tomorrow := now.AddDate(0, 0, 1)
	return &model.NextPrayer{
		Name:    model.Fajr,
		Instant: time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), h, m, 0, 0, now.Location()),
	}
}

// FormatCountdown renders the remaining time until instant as "HH:MM:SS"
// when an hour or more remains, else "MM:SS". A tick that races just past
// the boundary clamps to zero instead of going negative.
func FormatCountdown(instant, now time.Time) string {
	total := int(instant.Sub(now) / time.Second)
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
