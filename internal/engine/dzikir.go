package engine

import (
	"time"

	"github.com/masjid-labs/muadhin/internal/content"
	"github.com/masjid-labs/muadhin/internal/model"
)

// fadeDuration is the crossfade between consecutive dzikir entries. An
// entry is hidden for the last fadeDuration of its slot so the next one
// can fade in.
const fadeDuration = time.Second

// Rotator walks the dzikir list across a fixed total duration, giving
// each entry a slice proportional to its weight. It is restarted on
// every entry into the dzikir phase.
type Rotator struct {
	entries   []model.DzikirEntry
	durations []time.Duration
	total     time.Duration
	started   time.Time
	running   bool
}

// NewRotator builds a rotator for the configured dzikir duration in
// minutes. Each entry gets at least fadeDuration so the crossfade never
// consumes a whole slot.
func NewRotator(totalMinutes int) *Rotator {
	entries := content.DzikirEntries()
	r := &Rotator{entries: entries}
	if totalMinutes <= 0 || len(entries) == 0 {
		return r
	}

	total := time.Duration(totalMinutes) * time.Minute
	var weightSum float64
	for _, e := range entries {
		weightSum = weightSum + e.Weight
	}
	r.durations = make([]time.Duration, len(entries))
	for i, e := range entries {
		d := time.Duration(float64(total) / weightSum * e.Weight)
		if d < fadeDuration {
			d = fadeDuration
		}
		r.durations[i] = d
		r.total += d
	}
	return r
}

// Start resets the rotation clock.
func (r *Rotator) Start(now time.Time) {
	r.started = now
	r.running = len(r.durations) > 0
}

// Stop halts the rotation until the next Start.
func (r *Rotator) Stop() { r.running = false }

// Frame returns the entry to display at the given instant, its index,
// and whether it is currently visible (false during the fade-out tail
// of its slot). ok is false only while the rotator is stopped.
func (r *Rotator) Frame(now time.Time) (entry model.DzikirEntry, index int, visible bool, ok bool) {
	if !r.running {
		return model.DzikirEntry{}, 0, false, false
	}
	elapsed := now.Sub(r.started)
	if elapsed < 0 {
		elapsed = 0
	}
	// Wrap past the end so a clock jump never blanks the pane.
	elapsed %= r.total
	for i, d := range r.durations {
		if elapsed < d {
			return r.entries[i], i, elapsed < d-fadeDuration, true
		}
		elapsed -= d
	}
	return model.DzikirEntry{}, 0, false, false
}
