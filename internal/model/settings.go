package model

// RunningTextContent selects what the footer ticker rotates through.
type RunningTextContent string

const (
	ContentStatic RunningTextContent = "static"
	ContentQuran  RunningTextContent = "quran"
	ContentHadith RunningTextContent = "hadith"
)

// InfoSlide is one announcement shown in place of the clock while idle.
type InfoSlide struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Duration int    `json:"duration"` // seconds
}

// Settings is the full operator-editable configuration blob. It is persisted
// as a whole; oversized wallpaper/alarm assets are swapped for sentinel
// values before the blob is stored (see db.SettingsStore).
type Settings struct {
	MasjidName string `json:"masjid_name"`

	// Footer running text.
	RunningText              string               `json:"running_text"`
	RunningTextContent       []RunningTextContent `json:"running_text_content"`
	QuranTheme               string               `json:"quran_theme"`
	HadithTheme              string               `json:"hadith_theme"`
	RunningTextRotationSpeed int                  `json:"running_text_rotation_speed"` // seconds

	// Prayer time resolution.
	PrayerTimeSource  string `json:"prayer_time_source"` // "api" or "manual"
	LocationSource    string `json:"location_source"`    // "city" or "address"
	Address           string `json:"address"`
	City              string `json:"city"`
	Country           string `json:"country"`
	CalculationMethod int    `json:"calculation_method"`
	School            int    `json:"school"`        // 0 Shafi, 1 Hanafi
	MidnightMode      int    `json:"midnight_mode"` // 0 standard, 1 jafari
	Shafaq            string `json:"shafaq"`        // general | ahmer | abyad

	ManualPrayerTimes PrayerTimeSet      `json:"manual_prayer_times"`
	Iqamah            map[PrayerName]int `json:"iqamah"` // minutes, no Shuruq entry
	TimeCorrections   TimeCorrections    `json:"time_corrections"`

	// Cycle durations, minutes.
	PrayerDuration int `json:"prayer_duration"`
	DzikirDuration int `json:"dzikir_duration"`

	// Appearance (opaque to this service, persisted for the display).
	Theme        string `json:"theme"`
	AccentColor  string `json:"accent_color"`
	UseWallpaper bool   `json:"use_wallpaper"`
	WallpaperURL string `json:"wallpaper_url"`
	Orientation  string `json:"orientation"`

	// Alarm.
	EnableAlarmSound bool   `json:"enable_alarm_sound"`
	AlarmSoundURL    string `json:"alarm_sound_url"`

	// Info slides.
	EnableInfoSlides        bool        `json:"enable_info_slides"`
	InfoSlidesClockInterval int         `json:"info_slides_clock_interval"` // seconds
	InfoSlides              []InfoSlide `json:"info_slides"`
}

// DefaultPrayerTimes is the shipped manual schedule, used until the operator
// configures their own and as the last-resort fallback.
var DefaultPrayerTimes = PrayerTimeSet{
	Fajr:    "04:30",
	Shuruq:  "05:45",
	Dhuhr:   "11:45",
	Asr:     "15:00",
	Maghrib: "17:45",
	Isha:    "18:55",
}

// DefaultSettings returns the configuration a fresh install runs with.
func DefaultSettings() Settings {
	return Settings{
		MasjidName:               "Yuk Sholat",
		RunningText:              `"Dan dirikanlah shalat, tunaikanlah zakat dan ruku'lah beserta orang-orang yang ruku'." (QS. Al-Baqarah: 43)`,
		RunningTextContent:       []RunningTextContent{ContentStatic},
		QuranTheme:               "ibadah",
		HadithTheme:              "akhlak",
		RunningTextRotationSpeed: 30,
		PrayerTimeSource:         "api",
		LocationSource:           "city",
		Address:                  "Masjid Istiqlal, Jakarta, Indonesia",
		City:                     "Jakarta",
		Country:                  "Indonesia",
		CalculationMethod:        5, // Kemenag
		School:                   0,
		MidnightMode:             0,
		Shafaq:                   "general",
		ManualPrayerTimes:        DefaultPrayerTimes.Clone(),
		Iqamah: map[PrayerName]int{
			Fajr:    15,
			Dhuhr:   15,
			Asr:     15,
			Maghrib: 10,
			Isha:    10,
		},
		TimeCorrections: TimeCorrections{
			Fajr:    0,
			Dhuhr:   0,
			Asr:     0,
			Maghrib: 0,
			Isha:    0,
		},
		PrayerDuration:          10,
		DzikirDuration:          5,
		Theme:                   "dark",
		AccentColor:             "#ef4444",
		UseWallpaper:            true,
		WallpaperURL:            "https://cdn.pixabay.com/photo/2018/04/24/17/57/masjid-nabawi-3347602_960_720.jpg",
		Orientation:             "landscape",
		EnableAlarmSound:        true,
		AlarmSoundURL:           "https://cdn.pixabay.com/download/audio/2022/03/15/audio_32283e5329.mp3",
		EnableInfoSlides:        false,
		InfoSlidesClockInterval: 180,
		InfoSlides:              nil,
	}
}

// LocationIdentifier is the location component of the schedule cache key.
func (s Settings) LocationIdentifier() string {
	if s.LocationSource == "address" {
		return s.Address
	}
	return s.City + "_" + s.Country
}

// IqamahMinutes returns the configured iqamah wait for a prayer. Shuruq and
// unknown names yield zero.
func (s Settings) IqamahMinutes(p PrayerName) int {
	return s.Iqamah[p]
}
