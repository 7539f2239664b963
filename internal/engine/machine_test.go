package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-labs/muadhin/internal/model"
)

var machineTimes = model.PrayerTimeSet{
	model.Fajr:    "04:30",
	model.Shuruq:  "05:45",
	model.Dhuhr:   "11:45",
	model.Asr:     "15:00",
	model.Maghrib: "17:45",
	model.Isha:    "18:55",
}

func machineConfig() model.Settings {
	cfg := model.DefaultSettings()
	cfg.Iqamah[model.Asr] = 10
	cfg.PrayerDuration = 10
	cfg.DzikirDuration = 5
	return cfg
}

func tickAt(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, sec, 0, time.UTC)
}

func TestIdleCountdown(t *testing.T) {
	m := NewMachine()
	res := m.Tick(tickAt(14, 0, 0), machineTimes, machineConfig())

	require.Nil(t, res.Transition)
	require.NotNil(t, res.NextPrayer)
	assert.Equal(t, model.Asr, res.NextPrayer.Name)
	assert.Equal(t, "01:00:00", res.Countdown)
	assert.Equal(t, model.StateIdle, m.State())
}

func TestFullCycleWithIqamah(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()
	alarms := 0

	// Asr arrives: the last tick before the instant falls inside the
	// arrival window.
	res := m.Tick(tickAt(14, 59, 59), machineTimes, cfg)
	require.NotNil(t, res.Transition)
	assert.Equal(t, model.StateAzan, res.Transition.To)
	assert.Equal(t, 10*time.Second, res.Transition.TimerIn)
	assert.True(t, res.Transition.PlayAlarm)
	if res.Transition.PlayAlarm {
		alarms++
	}
	assert.Equal(t, model.Asr, m.SessionPrayer())
	require.NotNil(t, m.Session())
	assert.Equal(t, 600, m.Session().RemainingSeconds)

	// Azan message timer elapses, iqamah countdown begins.
	tr, ok := m.TimerElapsed(model.StateAzan, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateIqamahCountdown, tr.To)
	assert.Zero(t, tr.TimerIn) // tick-driven
	assert.False(t, tr.PlayAlarm)

	// Count all 600 seconds down.
	for i := 0; i < 599; i++ {
		res = m.Tick(tickAt(15, 0, 11+i), machineTimes, cfg)
		require.Nil(t, res.Transition, "unexpected transition at second %d", i)
	}
	res = m.Tick(tickAt(15, 10, 10), machineTimes, cfg)
	require.NotNil(t, res.Transition)
	assert.Equal(t, model.StateSilencePhone, res.Transition.To)
	assert.Equal(t, 7*time.Second, res.Transition.TimerIn)
	assert.True(t, res.Transition.PlayAlarm)
	if res.Transition.PlayAlarm {
		alarms++
	}
	assert.Nil(t, m.Session())

	// Silence notice, then the prayer itself.
	tr, ok = m.TimerElapsed(model.StateSilencePhone, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StatePrayerInProgress, tr.To)
	assert.Equal(t, 10*time.Minute, tr.TimerIn)

	tr, ok = m.TimerElapsed(model.StatePrayerInProgress, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateDzikir, tr.To)
	assert.Equal(t, 5*time.Minute, tr.TimerIn)

	// Dzikir ends, machine resets and asks for a fresh schedule.
	tr, ok = m.TimerElapsed(model.StateDzikir, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateIdle, tr.To)
	assert.True(t, tr.RefreshSchedule)
	assert.Empty(t, m.SessionPrayer())

	assert.Equal(t, 2, alarms, "exactly one alarm at azan entry and one at iqamah zero")
}

func TestZeroIqamahSkipsCountdown(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()
	cfg.Iqamah[model.Asr] = 0

	res := m.Tick(tickAt(14, 59, 59), machineTimes, cfg)
	require.NotNil(t, res.Transition)
	assert.Equal(t, model.StateAzan, res.Transition.To)
	assert.Nil(t, m.Session())

	tr, ok := m.TimerElapsed(model.StateAzan, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateSilencePhone, tr.To)
	assert.Equal(t, 7*time.Second, tr.TimerIn)
}

func TestZeroDurationsNeverStallTheCycle(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()
	cfg.Iqamah[model.Asr] = 0
	cfg.PrayerDuration = 0
	cfg.DzikirDuration = 0

	m.Tick(tickAt(14, 59, 59), machineTimes, cfg) // -> Azan
	tr, ok := m.TimerElapsed(model.StateAzan, cfg)
	require.True(t, ok)
	require.Equal(t, model.StateSilencePhone, tr.To)

	// Every timer-driven state must still schedule a timer, or the
	// machine would sit there forever ignoring ticks.
	tr, ok = m.TimerElapsed(model.StateSilencePhone, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StatePrayerInProgress, tr.To)
	assert.Equal(t, time.Second, tr.TimerIn)

	tr, ok = m.TimerElapsed(model.StatePrayerInProgress, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateDzikir, tr.To)
	assert.Equal(t, time.Second, tr.TimerIn)

	tr, ok = m.TimerElapsed(model.StateDzikir, cfg)
	require.True(t, ok)
	assert.Equal(t, model.StateIdle, tr.To)
}

func TestShuruqNeverTriggersAzan(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()

	// Shuruq lands in the arrival window but never starts the cycle.
	res := m.Tick(tickAt(5, 44, 59), machineTimes, cfg)
	assert.Nil(t, res.Transition)
	assert.Equal(t, model.StateIdle, m.State())

	// A moment later Shuruq has passed and Dhuhr is next.
	res = m.Tick(tickAt(5, 45, 1), machineTimes, cfg)
	require.NotNil(t, res.NextPrayer)
	assert.Equal(t, model.Dhuhr, res.NextPrayer.Name)
}

func TestArrivalToleratesOneSecondRace(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()

	// Tick lands just before the instant.
	res := m.Tick(tickAt(14, 59, 59).Add(500*time.Millisecond), machineTimes, cfg)
	require.NotNil(t, res.Transition)
	assert.Equal(t, model.StateAzan, res.Transition.To)
}

func TestOrphanedTimerIsIgnored(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()

	m.Tick(tickAt(14, 59, 59), machineTimes, cfg) // -> Azan

	// A stale timer for a state the machine already left must not fire.
	_, ok := m.TimerElapsed(model.StateSilencePhone, cfg)
	assert.False(t, ok)
	assert.Equal(t, model.StateAzan, m.State())
}

func TestCountdownSuspendedOutsideIdle(t *testing.T) {
	m := NewMachine()
	cfg := machineConfig()

	m.Tick(tickAt(14, 59, 59), machineTimes, cfg) // -> Azan
	res := m.Tick(tickAt(15, 0, 1), machineTimes, cfg)
	assert.Nil(t, res.NextPrayer)
	assert.Empty(t, res.Countdown)
}
