package model

import "time"

// PrayerName identifies one of the six daily prayer-time markers.
type PrayerName string

const (
	Fajr    PrayerName = "Fajr"
	Shuruq  PrayerName = "Shuruq"
	Dhuhr   PrayerName = "Dhuhr"
	Asr     PrayerName = "Asr"
	Maghrib PrayerName = "Maghrib"
	Isha    PrayerName = "Isha"
)

// PrayerSequence is the canonical time-ordered sequence of daily markers.
// Shuruq (sunrise) is displayed but never triggers a prayer session.
var PrayerSequence = []PrayerName{Fajr, Shuruq, Dhuhr, Asr, Maghrib, Isha}

// PrayerTimeSet maps every prayer name to a "HH:MM" wall-clock string.
// All six keys are always present once a schedule has been resolved.
type PrayerTimeSet map[PrayerName]string

// Clone returns an independent copy of the set.
func (s PrayerTimeSet) Clone() PrayerTimeSet {
	out := make(PrayerTimeSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// TimeCorrections holds signed minute offsets per prayer. Shuruq is never
// corrected.
type TimeCorrections map[PrayerName]int

// ScheduleSource records how a day's schedule was obtained.
type ScheduleSource string

const (
	SourceManual         ScheduleSource = "manual"
	SourceCachedRemote   ScheduleSource = "cached-remote"
	SourceFallbackManual ScheduleSource = "fallback-manual"
)

// ResolvedSchedule is a day's prayer times plus provenance. It is immutable
// once published; a fresh one is produced on boot, on date rollover and on
// settings change.
type ResolvedSchedule struct {
	Date   time.Time      `json:"date"`
	Times  PrayerTimeSet  `json:"times"`
	Source ScheduleSource `json:"source"`
}

// NextPrayer points at the next upcoming prayer strictly after "now".
type NextPrayer struct {
	Name    PrayerName `json:"name"`
	Instant time.Time  `json:"instant"`
}

// CycleState enumerates the display states owned by the prayer-cycle
// state machine. Exactly one is active at any time.
type CycleState string

const (
	StateIdle             CycleState = "idle"
	StateAzan             CycleState = "azan"
	StateIqamahCountdown  CycleState = "iqamah_countdown"
	StateSilencePhone     CycleState = "silence_phone"
	StatePrayerInProgress CycleState = "prayer_in_progress"
	StateDzikir           CycleState = "dzikir"
)

// IqamahSession exists between a prayer's arrival and the start of the
// congregational prayer. RemainingSeconds counts down at 1 Hz while the
// machine is in StateIqamahCountdown.
type IqamahSession struct {
	Prayer           PrayerName `json:"prayer"`
	RemainingSeconds int        `json:"remaining_seconds"`
}

// DzikirEntry is one remembrance text shown during the post-prayer phase.
// Weight determines its proportional share of the configured total duration.
type DzikirEntry struct {
	Arabic          string  `json:"arabic"`
	Transliteration string  `json:"transliteration"`
	Weight          float64 `json:"weight"`
}
