package engine

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/audio"
	"github.com/masjid-labs/muadhin/internal/hijri"
	"github.com/masjid-labs/muadhin/internal/model"
	"github.com/masjid-labs/muadhin/internal/schedule"
)

// SettingsSource yields the current display configuration. The settings
// store implements it; the driver re-reads it on every tick so admin
// edits apply without a restart.
type SettingsSource interface {
	Current() model.Settings
}

// StatePublisher announces display state changes to companion devices.
type StatePublisher interface {
	PublishState(state model.CycleState, prayer model.PrayerName)
}

// HijriProvider resolves the Hijri date for a Gregorian day.
type HijriProvider interface {
	For(ctx context.Context, date time.Time) hijri.Date
}

// DzikirFrame is the remembrance text currently on screen.
type DzikirFrame struct {
	Entry   model.DzikirEntry `json:"entry"`
	Index   int               `json:"index"`
	Visible bool              `json:"visible"`
}

// Snapshot is the full render state served to display clients. It is
// rebuilt once per second by the driver goroutine.
type Snapshot struct {
	State           model.CycleState     `json:"state"`
	SessionPrayer   model.PrayerName     `json:"session_prayer,omitempty"`
	IqamahRemaining int                  `json:"iqamah_remaining,omitempty"`
	Times           model.PrayerTimeSet  `json:"times"`
	Source          model.ScheduleSource `json:"source"`
	NextPrayer      *model.NextPrayer    `json:"next_prayer,omitempty"`
	Countdown       string               `json:"countdown,omitempty"`
	RunningText     string               `json:"running_text"`
	Dzikir          *DzikirFrame         `json:"dzikir,omitempty"`
	HijriDate       string               `json:"hijri_date"`
	GregorianDate   string               `json:"gregorian_date"`
	IsJumat         bool                 `json:"is_jumat"`
	Online          bool                 `json:"online"`
	ShowInfoSlide   bool                 `json:"show_info_slide"`
	InfoSlideIndex  int                  `json:"info_slide_index"`
}

// Driver runs the display loop. A single goroutine owns the state
// machine, the rotators, all timers and the resolved schedule, so no
// locking is needed around transitions; the snapshot is the only shared
// output and sits behind its own mutex.
type Driver struct {
	machine  *Machine
	text     *TextScheduler
	rotator  *Rotator
	resolver *schedule.Resolver
	hijriSrc HijriProvider
	player   audio.Player
	events   StatePublisher
	settings SettingsSource
	online   func() bool

	timer   *time.Timer
	timerCh chan model.CycleState

	rolloverCh chan struct{}
	settingsCh chan struct{}

	resolved model.ResolvedSchedule

	runningText  string
	lastTextSpin time.Time

	infoOnSlide    bool
	infoSlideIndex int
	lastInfoSwitch time.Time

	hijriDate string
	hijriAt   time.Time

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewDriver(resolver *schedule.Resolver, hijriSrc HijriProvider, player audio.Player, events StatePublisher, settings SettingsSource, online func() bool) *Driver {
	return &Driver{
		machine:    NewMachine(),
		text:       NewTextScheduler(),
		resolver:   resolver,
		hijriSrc:   hijriSrc,
		player:     player,
		events:     events,
		settings:   settings,
		online:     online,
		timerCh:    make(chan model.CycleState, 1),
		rolloverCh: make(chan struct{}, 1),
		settingsCh: make(chan struct{}, 1),
	}
}

// Snapshot returns the current render state.
func (d *Driver) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot
}

// NotifySettingsChanged asks the driver to re-resolve the schedule on
// its next loop iteration. Safe to call from any goroutine.
func (d *Driver) NotifySettingsChanged() {
	select {
	case d.settingsCh <- struct{}{}:
	default:
	}
}

// Run drives the display until the context is cancelled. The midnight
// resolution is rechecked every five minutes so a display that was
// offline at the actual rollover still picks up the new day within the
// first resolution window.
func (d *Driver) Run(ctx context.Context) {
	d.resolve(ctx, time.Now())

	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", func() {
		select {
		case d.rolloverCh <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to schedule rollover check")
	}
	c.Start()
	defer c.Stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	defer d.cancelTimer()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.step(ctx, now)
		case from := <-d.timerCh:
			d.onTimer(ctx, from, time.Now())
		case <-d.settingsCh:
			d.runningText = ""
			d.resolve(ctx, time.Now())
		case <-d.rolloverCh:
			now := time.Now()
			if now.Hour() == 0 && now.Minute() < 5 {
				d.resolve(ctx, now)
			}
		}
	}
}

func (d *Driver) resolve(ctx context.Context, now time.Time) {
	cfg := d.settings.Current()
	d.resolved = d.resolver.Resolve(ctx, cfg, now)
	log.Info().
		Str("date", d.resolved.Date.Format("2006-01-02")).
		Str("source", string(d.resolved.Source)).
		Msg("schedule resolved")
}

func (d *Driver) step(ctx context.Context, now time.Time) {
	cfg := d.settings.Current()

	// A resolved schedule for a previous day means the process slept
	// through midnight.
	if !sameDay(d.resolved.Date, now) && d.machine.State() == model.StateIdle {
		d.resolve(ctx, now)
	}

	res := d.machine.Tick(now, d.resolved.Times, cfg)
	if res.Transition != nil {
		d.applyTransition(ctx, res.Transition, cfg, now)
	}

	d.spinText(cfg, now)
	d.spinInfoSlides(cfg, now)
	d.publishSnapshot(ctx, cfg, now, res)
}

func (d *Driver) onTimer(ctx context.Context, from model.CycleState, now time.Time) {
	cfg := d.settings.Current()
	tr, ok := d.machine.TimerElapsed(from, cfg)
	if !ok {
		return
	}
	d.applyTransition(ctx, tr, cfg, now)
	// Show the new state right away instead of waiting out the tick.
	d.publishSnapshot(ctx, cfg, now, TickResult{})
}

func (d *Driver) applyTransition(ctx context.Context, tr *Transition, cfg model.Settings, now time.Time) {
	log.Info().
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Str("prayer", string(d.machine.SessionPrayer())).
		Msg("display state changed")

	d.cancelTimer()
	if tr.TimerIn > 0 {
		to := tr.To
		d.timer = time.AfterFunc(tr.TimerIn, func() {
			select {
			case d.timerCh <- to:
			default:
			}
		})
	}

	if tr.PlayAlarm && cfg.EnableAlarmSound && d.player != nil {
		d.player.PlayAlarm(d.machine.SessionPrayer())
	}
	if d.events != nil {
		d.events.PublishState(tr.To, d.machine.SessionPrayer())
	}

	switch tr.To {
	case model.StateDzikir:
		d.rotator = NewRotator(cfg.DzikirDuration)
		d.rotator.Start(now)
	case model.StateIdle:
		if d.rotator != nil {
			d.rotator.Stop()
		}
	}

	if tr.RefreshSchedule {
		d.resolve(ctx, now)
	}
}

func (d *Driver) cancelTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Driver) spinText(cfg model.Settings, now time.Time) {
	// A fresh fetch on the first tick after startup, a settings change
	// or a day rollover (the jumat override depends on the weekday).
	if d.runningText == "" || !sameDay(d.lastTextSpin, now) {
		d.runningText = d.text.Current(cfg, now)
		d.lastTextSpin = now
		return
	}
	interval := d.text.Interval(cfg)
	if interval <= 0 {
		// A single content type never rotates; the fetched text holds.
		return
	}
	if now.Sub(d.lastTextSpin) >= interval {
		d.text.Advance(cfg)
		d.runningText = d.text.Current(cfg, now)
		d.lastTextSpin = now
	}
}

// spinInfoSlides alternates the idle screen between the clock face and
// the configured info slides.
func (d *Driver) spinInfoSlides(cfg model.Settings, now time.Time) {
	slides := enabledSlides(cfg)
	if len(slides) == 0 || d.machine.State() != model.StateIdle {
		d.infoOnSlide = false
		return
	}
	interval := time.Duration(cfg.InfoSlidesClockInterval) * time.Second
	if interval <= 0 {
		interval = 3 * time.Minute
	}
	if d.lastInfoSwitch.IsZero() {
		d.lastInfoSwitch = now
		return
	}
	if now.Sub(d.lastInfoSwitch) < interval {
		return
	}
	d.lastInfoSwitch = now
	if d.infoOnSlide {
		d.infoSlideIndex = (d.infoSlideIndex + 1) % len(slides)
	}
	d.infoOnSlide = !d.infoOnSlide
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func enabledSlides(cfg model.Settings) []model.InfoSlide {
	if !cfg.EnableInfoSlides {
		return nil
	}
	return cfg.InfoSlides
}

func (d *Driver) publishSnapshot(ctx context.Context, cfg model.Settings, now time.Time, res TickResult) {
	snap := Snapshot{
		State:         d.machine.State(),
		SessionPrayer: d.machine.SessionPrayer(),
		Times:         d.resolved.Times,
		Source:        d.resolved.Source,
		NextPrayer:    res.NextPrayer,
		Countdown:     res.Countdown,
		RunningText:   d.runningText,
		GregorianDate: now.Format("Monday, 2 January 2006"),
		IsJumat:       now.Weekday() == time.Friday,
		ShowInfoSlide: d.infoOnSlide,
	}
	// One Hijri lookup per day, not per tick.
	if d.hijriSrc != nil {
		if d.hijriDate == "" || !sameDay(d.hijriAt, now) {
			d.hijriDate = d.hijriSrc.For(ctx, now).String()
			d.hijriAt = now
		}
		snap.HijriDate = d.hijriDate
	}
	if d.online != nil {
		snap.Online = d.online()
	}
	if session := d.machine.Session(); session != nil {
		snap.IqamahRemaining = session.RemainingSeconds
	}
	if d.machine.State() == model.StateDzikir && d.rotator != nil {
		if entry, idx, visible, ok := d.rotator.Frame(now); ok {
			snap.Dzikir = &DzikirFrame{Entry: entry, Index: idx, Visible: visible}
		}
	}
	if d.infoOnSlide {
		snap.InfoSlideIndex = d.infoSlideIndex
	}

	d.mu.Lock()
	d.snapshot = snap
	d.mu.Unlock()
}
