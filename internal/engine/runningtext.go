package engine

import (
	"time"

	"github.com/masjid-labs/muadhin/internal/content"
	"github.com/masjid-labs/muadhin/internal/model"
)

// TextScheduler cycles the footer ticker through the selected content
// types, re-fetching themed material on every rotation. It shares the
// timed-rotation shape of Rotator but rotates on a fixed interval
// instead of weighted slots.
type TextScheduler struct {
	index int
}

// NewTextScheduler starts at the first configured content type.
func NewTextScheduler() *TextScheduler { return &TextScheduler{} }

// Interval returns how long the current text stays up, or zero when no
// rotation is needed (a single content type never rotates).
func (s *TextScheduler) Interval(cfg model.Settings) time.Duration {
	if len(cfg.RunningTextContent) <= 1 {
		return 0
	}
	secs := cfg.RunningTextRotationSpeed
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// Advance moves to the next content type in the configured cycle.
func (s *TextScheduler) Advance(cfg model.Settings) {
	if n := len(cfg.RunningTextContent); n > 0 {
		s.index = (s.index + 1) % n
	}
}

// Current produces the ticker text for the active content type. On
// Fridays themed content comes from the jumat collection regardless of
// the configured theme. Any fetch failure falls back to the static
// configured text.
func (s *TextScheduler) Current(cfg model.Settings, now time.Time) string {
	kinds := cfg.RunningTextContent
	if len(kinds) == 0 {
		return cfg.RunningText
	}
	if s.index >= len(kinds) {
		s.index = 0
	}

	switch kinds[s.index] {
	case model.ContentQuran:
		text, err := content.RandomVerse(themeFor(cfg.QuranTheme, now))
		if err != nil {
			return cfg.RunningText
		}
		return text
	case model.ContentHadith:
		text, err := content.RandomHadith(themeFor(cfg.HadithTheme, now))
		if err != nil {
			return cfg.RunningText
		}
		return text
	default:
		return cfg.RunningText
	}
}

func themeFor(configured string, now time.Time) string {
	if now.Weekday() == time.Friday {
		return content.FridayTheme
	}
	return configured
}
