// Package schedule resolves the authoritative prayer times for "today" from
// either the remote monthly calendar (with a persistent month cache) or the
// operator's manual configuration. Resolution never fails: any provider or
// cache problem degrades to the manual times so the display always has a
// schedule to show.
package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/aladhan"
	"github.com/masjid-labs/muadhin/internal/model"
	"github.com/masjid-labs/muadhin/internal/timeutil"
)

// Fetcher retrieves one month of prayer days from the remote provider.
type Fetcher interface {
	Monthly(ctx context.Context, cfg model.Settings, year, month int) ([]aladhan.Day, error)
}

// Cache is the persistent month-granularity schedule cache.
type Cache interface {
	Get(ctx context.Context, key CacheKey) ([]aladhan.Day, bool)
	Put(ctx context.Context, key CacheKey, days []aladhan.Day)
}

// Resolver produces today's ResolvedSchedule.
type Resolver struct {
	fetcher Fetcher
	cache   Cache
	online  func() bool

	mu      sync.Mutex
	current string // config signature of the latest Resolve call
}

// NewResolver wires a resolver from its collaborators. online reports the
// network-availability signal.
func NewResolver(fetcher Fetcher, cache Cache, online func() bool) *Resolver {
	return &Resolver{fetcher: fetcher, cache: cache, online: online}
}

// KeyFor builds the cache key for a configuration and month.
func KeyFor(cfg model.Settings, year int, month time.Month) CacheKey {
	return CacheKey{
		Year:         year,
		Month:        int(month),
		Location:     cfg.LocationIdentifier(),
		Method:       cfg.CalculationMethod,
		School:       cfg.School,
		MidnightMode: cfg.MidnightMode,
		Shafaq:       cfg.Shafaq,
	}
}

// Resolve returns the schedule for the day of now. It consults, in order:
// manual configuration (manual mode), the month cache, a single remote
// fetch, and finally the manual times as fallback. On a successful fetch it
// also warms the cache for next month, best-effort, in the background.
func (r *Resolver) Resolve(ctx context.Context, cfg model.Settings, now time.Time) model.ResolvedSchedule {
	r.mu.Lock()
	r.current = configSignature(cfg)
	r.mu.Unlock()

	if cfg.PrayerTimeSource == "manual" {
		return model.ResolvedSchedule{
			Date:   now,
			Times:  corrected(manualTimes(cfg), cfg.TimeCorrections),
			Source: model.SourceManual,
		}
	}

	key := KeyFor(cfg, now.Year(), now.Month())

	if days, ok := r.cache.Get(ctx, key); ok && len(days) > 0 {
		if times, ok := timesForDay(days, now.Day()); ok {
			return model.ResolvedSchedule{
				Date:   now,
				Times:  corrected(times, cfg.TimeCorrections),
				Source: model.SourceCachedRemote,
			}
		}
		log.Warn().Int("day", now.Day()).Str("key", key.String()).
			Msg("cached month has no entry for today, using manual times")
		return r.fallback(cfg, now)
	}

	if !r.online() {
		log.Warn().Str("key", key.String()).Msg("offline with no cached month, using manual times")
		return r.fallback(cfg, now)
	}

	days, err := r.fetcher.Monthly(ctx, cfg, now.Year(), int(now.Month()))
	if err != nil {
		log.Error().Err(err).Str("key", key.String()).Msg("monthly fetch failed, using manual times")
		return r.fallback(cfg, now)
	}
	r.cache.Put(ctx, key, days)

	// Keep the cache warm across the month rollover. Failures are logged
	// and ignored; a stale result for an outdated configuration is
	// discarded instead of stored.
	go r.prefetchNextMonth(cfg, now)

	times, ok := timesForDay(days, now.Day())
	if !ok {
		log.Warn().Int("day", now.Day()).Msg("fetched month has no entry for today, using manual times")
		return r.fallback(cfg, now)
	}
	return model.ResolvedSchedule{
		Date:   now,
		Times:  corrected(times, cfg.TimeCorrections),
		Source: model.SourceCachedRemote,
	}
}

func (r *Resolver) fallback(cfg model.Settings, now time.Time) model.ResolvedSchedule {
	return model.ResolvedSchedule{
		Date:   now,
		Times:  corrected(manualTimes(cfg), cfg.TimeCorrections),
		Source: model.SourceFallbackManual,
	}
}

func (r *Resolver) prefetchNextMonth(cfg model.Settings, now time.Time) {
	next := now.AddDate(0, 1, 0)
	key := KeyFor(cfg, next.Year(), next.Month())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, ok := r.cache.Get(ctx, key); ok {
		return
	}

	days, err := r.fetcher.Monthly(ctx, cfg, next.Year(), int(next.Month()))
	if err != nil {
		log.Debug().Err(err).Str("key", key.String()).Msg("next month prefetch failed")
		return
	}

	// The configuration may have changed while the fetch was in flight;
	// storing the response then would poison the cache for a location or
	// method that is no longer current.
	r.mu.Lock()
	stale := r.current != configSignature(cfg)
	r.mu.Unlock()
	if stale {
		log.Debug().Str("key", key.String()).Msg("discarding stale prefetch result")
		return
	}

	r.cache.Put(ctx, key, days)
	log.Info().Str("key", key.String()).Msg("prefetched next month schedule")
}

// configSignature captures every setting the cache key depends on, minus the
// month, so in-flight requests for an outdated configuration can be told
// apart from current ones.
func configSignature(cfg model.Settings) string {
	return fmt.Sprintf("%s|%d|%d|%d|%s",
		cfg.LocationIdentifier(), cfg.CalculationMethod, cfg.School, cfg.MidnightMode, cfg.Shafaq)
}

// manualTimes returns the configured manual schedule with any missing entry
// filled from the shipped defaults, so a resolved set always carries all six
// keys.
func manualTimes(cfg model.Settings) model.PrayerTimeSet {
	times := make(model.PrayerTimeSet, len(model.PrayerSequence))
	for _, name := range model.PrayerSequence {
		if v, ok := cfg.ManualPrayerTimes[name]; ok && v != "" {
			times[name] = v
			continue
		}
		times[name] = model.DefaultPrayerTimes[name]
	}
	return times
}

// timesForDay extracts the canonical time set for a day-of-month from a
// monthly calendar, discarding any trailing timezone annotation the provider
// appends ("04:37 (WIB)" -> "04:37").
func timesForDay(days []aladhan.Day, dayOfMonth int) (model.PrayerTimeSet, bool) {
	for _, d := range days {
		n, err := strconv.Atoi(strings.TrimLeft(d.Date.Gregorian.Day, "0"))
		if err != nil || n != dayOfMonth {
			continue
		}
		return model.PrayerTimeSet{
			model.Fajr:    clockOnly(d.Timings.Fajr),
			model.Shuruq:  clockOnly(d.Timings.Sunrise),
			model.Dhuhr:   clockOnly(d.Timings.Dhuhr),
			model.Asr:     clockOnly(d.Timings.Asr),
			model.Maghrib: clockOnly(d.Timings.Maghrib),
			model.Isha:    clockOnly(d.Timings.Isha),
		}, true
	}
	return nil, false
}

func clockOnly(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func corrected(times model.PrayerTimeSet, corrections model.TimeCorrections) model.PrayerTimeSet {
	out := times.Clone()
	for name, offset := range corrections {
		if v, ok := out[name]; ok {
			out[name] = timeutil.ApplyCorrection(v, offset)
		}
	}
	return out
}
