// Package content holds the built-in remembrance corpus: the post-prayer
// dzikir sequence and the themed Quran verse and hadith collections used by
// the footer running text.
package content

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/masjid-labs/muadhin/internal/model"
)

// ErrNoContent is returned when a theme is unknown or has no entries.
var ErrNoContent = errors.New("no content for theme")

// FridayTheme overrides the configured verse/hadith theme on Fridays.
const FridayTheme = "jumat"

type verse struct {
	Arabic      string
	Translation string
	Surah       string
}

type hadith struct {
	Text     string
	Narrator string
}

// dzikirEntries is the fixed post-prayer sequence. Weights set each entry's
// share of the configured dzikir duration.
var dzikirEntries = []model.DzikirEntry{
	{
		Arabic:          "أَسْتَغْفِرُ اللهَ الْعَظِيمَ",
		Transliteration: "Astaghfirullahal 'adzim (3x)",
		Weight:          1.5,
	},
	{
		Arabic:          "اَللّهُمَّ أَنْتَ السَّلاَمُ، وَمِنْكَ السَّلاَمُ، تَبَارَكْتَ يَا ذَا الْجَلاَلِ وَاْلإِكْرَامِ",
		Transliteration: "Allahumma antas salaam, wa minkas salaam, tabaarakta yaa dzal jalaali wal ikraam.",
		Weight:          2.5,
	},
	{
		Arabic:          "سُبْحَانَ اللهِ",
		Transliteration: "Subhanallah (33x)",
		Weight:          2,
	},
	{
		Arabic:          "اَلْحَمْدُ لِلهِ",
		Transliteration: "Alhamdulillah (33x)",
		Weight:          2,
	},
	{
		Arabic:          "اَللهُ أَكْبَرُ",
		Transliteration: "Allahu Akbar (33x)",
		Weight:          2,
	},
	{
		Arabic:          "لَا إِلَهَ إِلَّا اللهُ وَحْدَهُ لَا شَرِيْكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ، وَهُوَ عَلَى كُلِّ شَيْءٍ قَدِيْرٌ",
		Transliteration: "Laa ilaaha illallaahu wahdahu laa syariikalah, lahul mulku walahul hamdu, wahuwa 'alaa kulli syai-in qadiir.",
		Weight:          3,
	},
}

var quranVerses = map[string][]verse{
	"keimanan": {
		{"ٱللَّهُ لَآ إِلَٰهَ إِلَّا هُوَ ٱلْحَىُّ ٱلْقَيُّومُ", "Allah, tidak ada Tuhan (yang berhak disembah) melainkan Dia Yang Hidup kekal lagi terus menerus mengurus (makhluk-Nya).", "Al-Baqarah: 255"},
		{"قُلْ هُوَ ٱللَّهُ أَحَدٌ", "Katakanlah: 'Dialah Allah, Yang Maha Esa.'", "Al-Ikhlas: 1"},
		{"وَهُوَ مَعَكُمْ أَيْنَ مَا كُنتُمْ", "Dan Dia bersama kamu di mana saja kamu berada.", "Al-Hadid: 4"},
	},
	"ibadah": {
		{"وَأَقِيمُوا۟ ٱلصَّلَوٰةَ وَءَاتُوا۟ ٱلزَّكَوٰةَ", "Dan dirikanlah shalat, tunaikanlah zakat dan ruku'lah beserta orang-orang yang ruku'.", "Al-Baqarah: 43"},
		{"وَأَقِمِ ٱلصَّلَوٰةَ لِذِكْرِىٓ", "Dan dirikanlah shalat untuk mengingat Aku.", "Ta-Ha: 14"},
		{"ٱسْتَعِينُوا۟ بِٱلصَّبْرِ وَٱلصَّلَوٰةِ", "Jadikanlah sabar dan shalat sebagai penolongmu.", "Al-Baqarah: 153"},
	},
	"akhlak": {
		{"وَقُولُوا۟ لِلنَّاسِ حُسْنًا", "Serta ucapkanlah kata-kata yang baik kepada manusia.", "Al-Baqarah: 83"},
		{"إِنَّ ٱللَّهَ يَأْمُرُ بِٱلْعَدْلِ وَٱلْإِحْسَٰنِ", "Sesungguhnya Allah menyuruh (kamu) berlaku adil dan berbuat kebajikan.", "An-Nahl: 90"},
		{"ٱدْفَعْ بِٱلَّتِى هِىَ أَحْسَنُ", "Tolaklah (kejahatan itu) dengan cara yang lebih baik.", "Fussilat: 34"},
	},
	"keluarga": {
		{"رَبَّنَا هَبْ لَنَا مِنْ أَزْوَٰجِنَا وَذُرِّيَّٰتِنَا قُرَّةَ أَعْيُنٍ", "Ya Tuhan kami, anugerahkanlah kepada kami isteri-isteri kami dan keturunan kami sebagai penyenang hati.", "Al-Furqan: 74"},
		{"وَوَصَّيْنَا ٱلْإِنسَٰنَ بِوَٰلِدَيْهِ إِحْسَٰنًا", "Kami perintahkan kepada manusia supaya berbuat baik kepada dua orang ibu bapaknya.", "Al-Ahqaf: 15"},
	},
	FridayTheme: {
		{"ٱلْحَمْدُ لِلَّهِ ٱلَّذِىٓ أَنزَلَ عَلَىٰ عَبْدِهِ ٱلْكِتَٰبَ", "Segala puji bagi Allah yang telah menurunkan kepada hamba-Nya Al Kitab (Al-Quran).", "Al-Kahfi: 1"},
		{"رَبَّنَآ ءَاتِنَا مِن لَّدُنكَ رَحْمَةً", "Wahai Tuhan kami, berikanlah rahmat kepada kami dari sisi-Mu.", "Al-Kahfi: 10"},
		{"وَقُلِ ٱلْحَقُّ مِن رَّبِّكُمْ", "Dan katakanlah: 'Kebenaran itu datangnya dari Tuhanmu.'", "Al-Kahfi: 29"},
	},
}

var hadiths = map[string][]hadith{
	"akhlak": {
		{"Sesungguhnya yang paling aku cintai di antara kalian dan yang paling dekat tempat duduknya denganku pada hari kiamat adalah yang paling baik akhlaknya.", "HR. Tirmidzi"},
		{"Orang mukmin yang paling sempurna imannya adalah yang paling baik akhlaknya.", "HR. Tirmidzi"},
		{"Tidak ada sesuatu yang lebih berat dalam timbangan seorang mukmin pada hari kiamat daripada akhlak yang baik.", "HR. Tirmidzi"},
	},
	"iman": {
		{"Iman itu ada tujuh puluh lebih cabang, dan malu adalah salah satu cabang dari iman.", "HR. Bukhari dan Muslim"},
		{"Perbaharuilah iman kalian dengan memperbanyak mengucapkan Laa ilaaha illallah.", "HR. Ahmad"},
	},
	"ilmu": {
		{"Barangsiapa menempuh jalan untuk mencari ilmu, maka Allah akan memudahkan baginya jalan menuju surga.", "HR. Muslim"},
		{"Menuntut ilmu itu wajib atas setiap Muslim.", "HR. Ibnu Majah"},
		{"Apabila manusia meninggal dunia, maka terputuslah semua amalnya kecuali tiga perkara: sedekah jariyah, ilmu yang bermanfaat, dan anak saleh yang mendoakannya.", "HR. Muslim"},
	},
	"doa": {
		{"Doa adalah senjata seorang mukmin, tiang agama, serta cahaya langit dan bumi.", "HR. Al-Hakim"},
		{"Tidak ada sesuatu yang lebih mulia di sisi Allah Ta'ala daripada doa.", "HR. Tirmidzi"},
	},
	FridayTheme: {
		{"Sebaik-baik hari di mana matahari terbit adalah hari Jumat.", "HR. Muslim"},
		{"Barangsiapa membaca surat Al-Kahfi pada hari Jumat, maka akan dipancarkan cahaya untuknya di antara dua Jumat.", "HR. Al-Hakim & Al-Baihaqi"},
		{"Perbanyaklah shalawat kepadaku pada hari Jumat dan malam Jumat.", "HR. Al-Baihaqi"},
	},
}

// DzikirEntries returns the fixed weighted dzikir sequence.
func DzikirEntries() []model.DzikirEntry {
	return dzikirEntries
}

// QuranThemes lists the themes available for verse rotation.
func QuranThemes() []string {
	return themes(quranVerses)
}

// HadithThemes lists the themes available for hadith rotation.
func HadithThemes() []string {
	return themes(hadiths)
}

func themes[V any](m map[string][]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if k == FridayTheme {
			continue
		}
		out = append(out, k)
	}
	return out
}

// RandomVerse picks a random verse for the theme, formatted for the footer.
func RandomVerse(theme string) (string, error) {
	collection, ok := quranVerses[theme]
	if !ok || len(collection) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoContent, theme)
	}
	v := collection[rand.Intn(len(collection))]
	return fmt.Sprintf("%q (QS. %s) Artinya: %q", v.Arabic, v.Surah, v.Translation), nil
}

// RandomHadith picks a random hadith for the theme, formatted for the footer.
func RandomHadith(theme string) (string, error) {
	collection, ok := hadiths[theme]
	if !ok || len(collection) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoContent, theme)
	}
	h := collection[rand.Intn(len(collection))]
	return fmt.Sprintf("Hadits: %q (%s)", h.Text, h.Narrator), nil
}
