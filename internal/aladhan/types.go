package aladhan

// Timings carries the time-of-day strings the API returns for one day.
// Values look like "04:37" or "04:37 (WIB)"; callers strip the suffix.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// HijriMonth is the month component of a Hijri date.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// HijriDate is the Hijri half of the API's date object.
type HijriDate struct {
	Date  string     `json:"date"`
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

// GregorianDate is the Gregorian half of the API's date object.
type GregorianDate struct {
	Date string `json:"date"`
	Day  string `json:"day"`
}

// Date pairs the two calendars for one calendar day.
type Date struct {
	Readable  string        `json:"readable"`
	Hijri     HijriDate     `json:"hijri"`
	Gregorian GregorianDate `json:"gregorian"`
}

// Day is one entry of a monthly calendar response.
type Day struct {
	Timings Timings `json:"timings"`
	Date    Date    `json:"date"`
}

// CalendarResponse is the envelope of /calendarByCity and /calendarByAddress.
type CalendarResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []Day  `json:"data"`
}

// GToHResponse is the envelope of /gToH.
type GToHResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Date   `json:"data"`
}
