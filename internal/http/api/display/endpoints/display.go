package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/masjid-labs/muadhin/internal/content"
	"github.com/masjid-labs/muadhin/internal/engine"
	"github.com/masjid-labs/muadhin/internal/http/api"
	"github.com/masjid-labs/muadhin/internal/http/api/display/packets"
	"github.com/masjid-labs/muadhin/internal/model"
)

// DisplayModule mounts the unauthenticated endpoints the display
// clients poll. Displays are dumb terminals on the mosque LAN; they
// carry no credentials.
func DisplayModule(driver *engine.Driver) api.Module {
	ctl := &displayManager{driver: driver}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/state", ctl.getState)
		c.PUBLIC_GET("/schedule", ctl.getSchedule)
		c.PUBLIC_GET("/content/dzikir", ctl.getDzikir)
		c.PUBLIC_GET("/content/themes", ctl.getThemes)
	})
}

type displayManager struct {
	driver *engine.Driver
}

// GET /api/display/state
func (d *displayManager) getState(ctx *gin.Context) (any, *api.APIError) {
	snap := d.driver.Snapshot()
	return packets.StateResponse{
		Snapshot: snap,
		Labels:   prayerLabels(snap.IsJumat),
	}, nil
}

// GET /api/display/schedule
func (d *displayManager) getSchedule(ctx *gin.Context) (any, *api.APIError) {
	snap := d.driver.Snapshot()
	return packets.ScheduleResponse{
		Times:         snap.Times,
		Source:        snap.Source,
		Labels:        prayerLabels(snap.IsJumat),
		HijriDate:     snap.HijriDate,
		GregorianDate: snap.GregorianDate,
	}, nil
}

// GET /api/display/content/dzikir
func (d *displayManager) getDzikir(ctx *gin.Context) (any, *api.APIError) {
	return packets.DzikirResponse{Entries: content.DzikirEntries()}, nil
}

// GET /api/display/content/themes
func (d *displayManager) getThemes(ctx *gin.Context) (any, *api.APIError) {
	return packets.ThemesResponse{
		Quran:  content.QuranThemes(),
		Hadith: content.HadithThemes(),
	}, nil
}

// prayerLabels names the timetable slots; on Fridays the midday prayer
// is Jumat.
func prayerLabels(isJumat bool) map[model.PrayerName]string {
	labels := map[model.PrayerName]string{
		model.Fajr:    "Subuh",
		model.Shuruq:  "Syuruq",
		model.Dhuhr:   "Dzuhur",
		model.Asr:     "Ashar",
		model.Maghrib: "Maghrib",
		model.Isha:    "Isya",
	}
	if isJumat {
		labels[model.Dhuhr] = "Jumat"
	}
	return labels
}
