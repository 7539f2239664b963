package packets

import (
	"github.com/masjid-labs/muadhin/internal/engine"
	"github.com/masjid-labs/muadhin/internal/model"
)

// StateResponse is polled by display clients once per second.
type StateResponse struct {
	engine.Snapshot
	Labels map[model.PrayerName]string `json:"labels"`
}

// ScheduleResponse carries today's resolved times without the cycle
// state, for widgets that only render the timetable.
type ScheduleResponse struct {
	Times         model.PrayerTimeSet         `json:"times"`
	Source        model.ScheduleSource        `json:"source"`
	Labels        map[model.PrayerName]string `json:"labels"`
	HijriDate     string                      `json:"hijri_date"`
	GregorianDate string                      `json:"gregorian_date"`
}

// DzikirResponse lists the remembrance corpus with display weights.
type DzikirResponse struct {
	Entries []model.DzikirEntry `json:"entries"`
}

// ThemesResponse lists the selectable running-text themes.
type ThemesResponse struct {
	Quran  []string `json:"quran"`
	Hadith []string `json:"hadith"`
}
