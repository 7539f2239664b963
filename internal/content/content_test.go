package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDzikirEntries(t *testing.T) {
	entries := DzikirEntries()
	require.Len(t, entries, 6)

	var total float64
	for _, e := range entries {
		assert.NotEmpty(t, e.Arabic)
		assert.NotEmpty(t, e.Transliteration)
		assert.Greater(t, e.Weight, 0.0)
		total += e.Weight
	}
	assert.InDelta(t, 13.0, total, 1e-9)
}

func TestRandomVerse(t *testing.T) {
	for _, theme := range QuranThemes() {
		text, err := RandomVerse(theme)
		require.NoError(t, err)
		assert.Contains(t, text, "QS.")
	}

	_, err := RandomVerse("nonexistent")
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = RandomVerse("")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestRandomHadith(t *testing.T) {
	for _, theme := range HadithThemes() {
		text, err := RandomHadith(theme)
		require.NoError(t, err)
		assert.Contains(t, text, "HR.")
	}

	_, err := RandomHadith("nonexistent")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestFridayThemeExists(t *testing.T) {
	_, err := RandomVerse(FridayTheme)
	assert.NoError(t, err)
	_, err = RandomHadith(FridayTheme)
	assert.NoError(t, err)

	// Friday is an override, not a regular choice.
	assert.NotContains(t, QuranThemes(), FridayTheme)
	assert.NotContains(t, HadithThemes(), FridayTheme)
}
