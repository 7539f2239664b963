package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-labs/muadhin/internal/model"
)

var (
	monday = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	friday = time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
)

func TestTextSchedulerStaticOnly(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.RunningText = "selamat datang"
	cfg.RunningTextContent = []model.RunningTextContent{model.ContentStatic}

	s := NewTextScheduler()
	assert.Equal(t, "selamat datang", s.Current(cfg, monday))
	assert.Zero(t, s.Interval(cfg), "single content type never rotates")
}

func TestTextSchedulerCyclesThroughTypes(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.RunningText = "static fallback"
	cfg.RunningTextContent = []model.RunningTextContent{
		model.ContentStatic, model.ContentQuran, model.ContentHadith,
	}

	s := NewTextScheduler()
	assert.Equal(t, 30*time.Second, s.Interval(cfg))

	assert.Equal(t, "static fallback", s.Current(cfg, monday))
	s.Advance(cfg)
	assert.NotEmpty(t, s.Current(cfg, monday))
	assert.NotEqual(t, "static fallback", s.Current(cfg, monday))
	s.Advance(cfg)
	assert.NotEmpty(t, s.Current(cfg, monday))
	s.Advance(cfg)
	assert.Equal(t, "static fallback", s.Current(cfg, monday), "cycle wraps to the first type")
}

func TestTextSchedulerFallsBackOnUnknownTheme(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.RunningText = "static fallback"
	cfg.RunningTextContent = []model.RunningTextContent{model.ContentQuran}
	cfg.QuranTheme = "nonexistent"

	s := NewTextScheduler()
	assert.Equal(t, "static fallback", s.Current(cfg, monday))
}

func TestTextSchedulerFridayOverridesTheme(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.RunningText = "static fallback"
	cfg.RunningTextContent = []model.RunningTextContent{model.ContentQuran}
	cfg.QuranTheme = "nonexistent"

	// The configured theme is broken, but Friday swaps in the jumat
	// collection so the fetch still succeeds.
	s := NewTextScheduler()
	assert.NotEqual(t, "static fallback", s.Current(cfg, friday))
}

func TestTextSchedulerShrunkConfigResetsIndex(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.RunningTextContent = []model.RunningTextContent{
		model.ContentStatic, model.ContentQuran,
	}

	s := NewTextScheduler()
	s.Advance(cfg)

	cfg.RunningTextContent = []model.RunningTextContent{model.ContentStatic}
	assert.Equal(t, cfg.RunningText, s.Current(cfg, monday))
}
