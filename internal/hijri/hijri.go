// Package hijri supplies the Hijri date line shown on the idle screen.
// The authoritative value comes from the Aladhan gToH endpoint; when the
// network is down a local tabular (arithmetic) conversion stands in, which
// can be off by a day from the observational calendar.
package hijri

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/aladhan"
)

// Date is a resolved Hijri calendar date.
type Date struct {
	Day         int    `json:"day"`
	MonthNumber int    `json:"month_number"`
	Month       string `json:"month"`
	MonthArabic string `json:"month_arabic"`
	Year        int    `json:"year"`
}

// String renders the date the way the display footer shows it.
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d H", d.Day, d.Month, d.Year)
}

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

var monthNamesArabic = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الثاني",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// Provider resolves Hijri dates, remote first, tabular fallback.
type Provider struct {
	client *aladhan.Client
	online func() bool
}

func NewProvider(client *aladhan.Client, online func() bool) *Provider {
	return &Provider{client: client, online: online}
}

// For returns the Hijri date for a Gregorian instant. It never fails; any
// provider problem degrades to the tabular conversion.
func (p *Provider) For(ctx context.Context, date time.Time) Date {
	if p.online == nil || !p.online() {
		return Tabular(date)
	}

	resp, err := p.client.HijriDate(ctx, date)
	if err != nil {
		log.Warn().Err(err).Msg("hijri fetch failed, using tabular conversion")
		return Tabular(date)
	}

	h := resp.Data.Hijri
	var day, year int
	if _, err := fmt.Sscanf(h.Day, "%d", &day); err != nil {
		return Tabular(date)
	}
	if _, err := fmt.Sscanf(h.Year, "%d", &year); err != nil {
		return Tabular(date)
	}
	if h.Month.Number < 1 || h.Month.Number > 12 {
		return Tabular(date)
	}

	return Date{
		Day:         day,
		MonthNumber: h.Month.Number,
		Month:       monthNames[h.Month.Number-1],
		MonthArabic: h.Month.Ar,
		Year:        year,
	}
}

// Tabular converts a Gregorian date with the civil (Kuwaiti) arithmetic
// calendar. No network, deterministic, approximate.
func Tabular(date time.Time) Date {
	jdn := gregorianJDN(date.Year(), int(date.Month()), date.Day())
	y, m, d := jdnToHijri(jdn)
	return Date{
		Day:         d,
		MonthNumber: m,
		Month:       monthNames[m-1],
		MonthArabic: monthNamesArabic[m-1],
		Year:        y,
	}
}

func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func jdnToHijri(jdn int) (year, month, day int) {
	l := jdn - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month = (24 * l) / 709
	day = l - (709*month)/24
	year = 30*n + j - 30
	return
}
