package hijri

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-labs/muadhin/internal/aladhan"
)

func TestTabularKnownDates(t *testing.T) {
	d := Tabular(time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 1446, d.Year)
	assert.Equal(t, 9, d.MonthNumber)
	assert.Equal(t, "Ramadan", d.Month)
	assert.Equal(t, 3, d.Day)

	d = Tabular(time.Date(2025, time.June, 26, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, 1446, d.Year)
	assert.Equal(t, 12, d.MonthNumber)
}

func TestTabularAlwaysInRange(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3000; i++ {
		d := Tabular(start.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, d.Day, 1)
		assert.LessOrEqual(t, d.Day, 30)
		assert.GreaterOrEqual(t, d.MonthNumber, 1)
		assert.LessOrEqual(t, d.MonthNumber, 12)
	}
}

func TestTabularIsMonotonic(t *testing.T) {
	// Consecutive days never move the Hijri date backwards.
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	prev := Tabular(start)
	for i := 1; i < 400; i++ {
		cur := Tabular(start.AddDate(0, 0, i))
		prevOrd := prev.Year*12*30 + (prev.MonthNumber-1)*30 + prev.Day
		curOrd := cur.Year*12*30 + (cur.MonthNumber-1)*30 + cur.Day
		assert.Greater(t, curOrd, prevOrd)
		prev = cur
	}
}

func TestProviderFallsBackWhenOffline(t *testing.T) {
	p := NewProvider(aladhan.NewClient(), func() bool { return false })
	d := p.For(context.Background(), time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "3 Ramadan 1446 H", d.String())
}
