package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-labs/muadhin/internal/model"
)

func TestKeyForDistinguishesEveryParameter(t *testing.T) {
	base := model.DefaultSettings()

	variants := []func(*model.Settings){
		func(s *model.Settings) { s.City = "Bandung" },
		func(s *model.Settings) { s.Country = "Malaysia" },
		func(s *model.Settings) { s.CalculationMethod = 3 },
		func(s *model.Settings) { s.School = 1 },
		func(s *model.Settings) { s.MidnightMode = 1 },
		func(s *model.Settings) { s.Shafaq = "ahmer" },
	}

	baseKey := KeyFor(base, 2025, time.March).String()
	for _, mutate := range variants {
		cfg := base
		mutate(&cfg)
		assert.NotEqual(t, baseKey, KeyFor(cfg, 2025, time.March).String())
	}

	// Different months never share a key either.
	assert.NotEqual(t, baseKey, KeyFor(base, 2025, time.April).String())
	assert.NotEqual(t, baseKey, KeyFor(base, 2026, time.March).String())
}

func TestKeyForAddressMode(t *testing.T) {
	cfg := model.DefaultSettings()
	cityKey := KeyFor(cfg, 2025, time.March)

	cfg.LocationSource = "address"
	addressKey := KeyFor(cfg, 2025, time.March)

	assert.NotEqual(t, cityKey.String(), addressKey.String())
	assert.Contains(t, addressKey.String(), cfg.Address)
}
