package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-labs/muadhin/internal/model"
)

var testTimes = model.PrayerTimeSet{
	model.Fajr:    "04:30",
	model.Shuruq:  "05:45",
	model.Dhuhr:   "11:45",
	model.Asr:     "15:00",
	model.Maghrib: "17:45",
	model.Isha:    "18:55",
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, 0, 0, time.UTC)
}

func TestNextMidAfternoon(t *testing.T) {
	next := Next(testTimes, at(14, 0))
	require.NotNil(t, next)
	assert.Equal(t, model.Asr, next.Name)
	assert.Equal(t, at(15, 0), next.Instant)
	assert.Equal(t, "01:00:00", FormatCountdown(next.Instant, at(14, 0)))
}

func TestNextWrapsToTomorrowFajr(t *testing.T) {
	next := Next(testTimes, at(23, 0))
	require.NotNil(t, next)
	assert.Equal(t, model.Fajr, next.Name)
	assert.Equal(t, time.Date(2025, time.March, 4, 4, 30, 0, 0, time.UTC), next.Instant)
}

func TestNextSkipsUnparseableEntries(t *testing.T) {
	times := testTimes.Clone()
	times[model.Asr] = "bogus"

	next := Next(times, at(14, 0))
	require.NotNil(t, next)
	assert.Equal(t, model.Maghrib, next.Name)
}

func TestNextNilWithoutFajr(t *testing.T) {
	times := model.PrayerTimeSet{model.Fajr: ""}
	assert.Nil(t, Next(times, at(23, 0)))
}

func TestNextIsStrictlyAfterNow(t *testing.T) {
	// Exactly at Asr the pointer must already be Maghrib.
	next := Next(testTimes, at(15, 0))
	require.NotNil(t, next)
	assert.Equal(t, model.Maghrib, next.Name)
}

func TestInstantsKeepCanonicalOrder(t *testing.T) {
	ins := Instants(testTimes, at(0, 0))
	require.Len(t, ins, 6)
	assert.Equal(t, model.Fajr, ins[0].Name)
	assert.Equal(t, model.Isha, ins[5].Name)
	for i := 1; i < len(ins); i++ {
		assert.True(t, ins[i].Time.After(ins[i-1].Time))
	}
}

func TestFormatCountdown(t *testing.T) {
	base := at(12, 0)
	assert.Equal(t, "02:05:09", FormatCountdown(base.Add(2*time.Hour+5*time.Minute+9*time.Second), base))
	assert.Equal(t, "59:59", FormatCountdown(base.Add(time.Hour-time.Second), base))
	assert.Equal(t, "00:07", FormatCountdown(base.Add(7*time.Second), base))
	// Clamped when the tick races past the boundary.
	assert.Equal(t, "00:00", FormatCountdown(base.Add(-900*time.Millisecond), base))
}
