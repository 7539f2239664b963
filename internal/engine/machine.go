// Package engine drives the prayer-cycle display: the state machine that
// walks a congregation from the azan call through dzikir and back to the
// idle clock, plus the rotators for dzikir texts and footer running text.
//
// The machine itself holds no timers. Every entry point takes the current
// instant, and timed transitions are reported back to the caller as a
// duration to schedule, so the whole cycle is testable against a virtual
// clock.
package engine

import (
	"time"

	"github.com/masjid-labs/muadhin/internal/model"
	"github.com/masjid-labs/muadhin/internal/prayer"
)

const (
	azanDuration    = 10 * time.Second
	silenceDuration = 7 * time.Second

	// A prayer counts as "arrived" when a 1 Hz tick lands within one
	// second of its instant.
	arrivalWindow = time.Second
)

// Transition describes one state change and the side effects the caller
// must perform.
type Transition struct {
	From model.CycleState
	To   model.CycleState

	// TimerIn is how long after this transition the caller must invoke
	// TimerElapsed. Zero means the new state is driven by ticks instead.
	TimerIn time.Duration

	// PlayAlarm is set exactly twice per cycle: on Azan entry and when
	// the iqamah countdown reaches zero.
	PlayAlarm bool

	// RefreshSchedule asks the caller to resolve a fresh schedule; set on
	// the return to Idle so the next day's times are picked up.
	RefreshSchedule bool
}

// TickResult is what a 1 Hz tick produces.
type TickResult struct {
	// Transition is non-nil when the tick caused a state change.
	Transition *Transition

	// NextPrayer and Countdown are populated only while Idle.
	NextPrayer *model.NextPrayer
	Countdown  string
}

// Machine owns the display cycle state. All methods must be called from a
// single control goroutine.
type Machine struct {
	state         model.CycleState
	session       *model.IqamahSession
	sessionPrayer model.PrayerName
}

func NewMachine() *Machine {
	return &Machine{state: model.StateIdle}
}

// State returns the active cycle state.
func (m *Machine) State() model.CycleState { return m.state }

// Session returns the live iqamah session, or nil.
func (m *Machine) Session() *model.IqamahSession { return m.session }

// SessionPrayer names the prayer currently being observed; empty while Idle.
func (m *Machine) SessionPrayer() model.PrayerName { return m.sessionPrayer }

// Tick advances the machine by one 1 Hz tick. While Idle it evaluates the
// next-prayer pointer and fires the Azan transition when a prayer arrives;
// while counting down iqamah it decrements the session. All other states sit
// on their timers and ignore ticks.
func (m *Machine) Tick(now time.Time, times model.PrayerTimeSet, cfg model.Settings) TickResult {
	switch m.state {
	case model.StateIdle:
		return m.tickIdle(now, times, cfg)
	case model.StateIqamahCountdown:
		return m.tickIqamah()
	default:
		return TickResult{}
	}
}

func (m *Machine) tickIdle(now time.Time, times model.PrayerTimeSet, cfg model.Settings) TickResult {
	next := prayer.Next(times, now)
	if next == nil {
		return TickResult{}
	}

	diff := next.Instant.Sub(now)
	if diff <= arrivalWindow && diff > -arrivalWindow && next.Name != model.Shuruq {
		m.sessionPrayer = next.Name
		if mins := cfg.IqamahMinutes(next.Name); mins > 0 {
			m.session = &model.IqamahSession{Prayer: next.Name, RemainingSeconds: mins * 60}
		} else {
			m.session = nil
		}
		t := m.transition(model.StateAzan, azanDuration)
		t.PlayAlarm = true
		return TickResult{Transition: t}
	}

	return TickResult{
		NextPrayer: next,
		Countdown:  prayer.FormatCountdown(next.Instant, now),
	}
}

func (m *Machine) tickIqamah() TickResult {
	if m.session == nil {
		// No session to count; fall through to the silence notice.
		t := m.transition(model.StateSilencePhone, silenceDuration)
		return TickResult{Transition: t}
	}

	m.session.RemainingSeconds--
	if m.session.RemainingSeconds > 0 {
		return TickResult{}
	}

	m.session = nil
	t := m.transition(model.StateSilencePhone, silenceDuration)
	t.PlayAlarm = true
	return TickResult{Transition: t}
}

// TimerElapsed handles a timed transition scheduled by an earlier Transition.
// from guards against orphaned timers: a timer that fires after the machine
// has already moved on is ignored.
func (m *Machine) TimerElapsed(from model.CycleState, cfg model.Settings) (*Transition, bool) {
	if from != m.state {
		return nil, false
	}

	switch m.state {
	case model.StateAzan:
		if m.session != nil && m.session.RemainingSeconds > 0 {
			// Tick-driven: the countdown decrements on the 1 Hz tick.
			return m.transition(model.StateIqamahCountdown, 0), true
		}
		return m.transition(model.StateSilencePhone, silenceDuration), true

	case model.StateSilencePhone:
		return m.transition(model.StatePrayerInProgress, timerFor(cfg.PrayerDuration)), true

	case model.StatePrayerInProgress:
		return m.transition(model.StateDzikir, timerFor(cfg.DzikirDuration)), true

	case model.StateDzikir:
		m.sessionPrayer = ""
		m.session = nil
		t := m.transition(model.StateIdle, 0)
		t.RefreshSchedule = true
		return t, true
	}

	return nil, false
}

func (m *Machine) transition(to model.CycleState, timerIn time.Duration) *Transition {
	t := &Transition{From: m.state, To: to, TimerIn: timerIn}
	m.state = to
	return t
}

// timerFor converts a configured duration in minutes into a timer value.
// Timer-driven states only leave on their timer, so a zero or negative
// configuration still gets one tick; otherwise the cycle would stall
// there and hold up the daily re-resolution with it.
func timerFor(n int) time.Duration {
	d := time.Duration(n) * time.Minute
	if d < time.Second {
		return time.Second
	}
	return d
}
