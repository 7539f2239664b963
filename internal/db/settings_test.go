package db

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-labs/muadhin/internal/model"
)

type fakeSink struct {
	saved map[string][]byte
	err   error
}

func (f *fakeSink) Save(name, mimeType string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[name] = data
	return nil
}

func dataURL(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestSplitDataURL(t *testing.T) {
	mime, data, ok := splitDataURL(dataURL("image/png", []byte{1, 2, 3}))
	require.True(t, ok)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte{1, 2, 3}, data)

	for _, s := range []string{
		"https://example.com/wall.jpg",
		SentinelLocalWallpaper,
		"data:image/png,notbase64marker",
		"data:image/png;base64,%%%",
		"",
	} {
		_, _, ok := splitDataURL(s)
		assert.False(t, ok, "should reject %q", s)
	}
}

func TestOffloadStoresAssetAndWritesSentinel(t *testing.T) {
	sink := &fakeSink{}
	st := &SettingsStore{assets: sink}

	value, warnings := st.offload(
		dataURL("image/jpeg", []byte("wall")), "https://old", AssetWallpaper, SentinelLocalWallpaper, nil)

	assert.Equal(t, SentinelLocalWallpaper, value)
	assert.Empty(t, warnings)
	assert.Equal(t, []byte("wall"), sink.saved[AssetWallpaper])
}

func TestOffloadRevertsFieldWhenSinkRejects(t *testing.T) {
	sink := &fakeSink{err: errors.New("asset exceeds capacity")}
	st := &SettingsStore{assets: sink}

	value, warnings := st.offload(
		dataURL("audio/mpeg", []byte("tone")), "https://old/alarm.mp3", AssetAlarm, SentinelLocalAlarm, nil)

	assert.Equal(t, "https://old/alarm.mp3", value, "only the oversized field reverts")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "alarm upload rejected")
}

func TestNormalizeDurationsClampsNegatives(t *testing.T) {
	cfg := model.DefaultSettings()
	cfg.PrayerDuration = -3
	cfg.DzikirDuration = -1

	cfg = normalizeDurations(cfg)
	assert.Zero(t, cfg.PrayerDuration)
	assert.Zero(t, cfg.DzikirDuration)

	cfg.PrayerDuration = 10
	cfg.DzikirDuration = 5
	cfg = normalizeDurations(cfg)
	assert.Equal(t, 10, cfg.PrayerDuration)
	assert.Equal(t, 5, cfg.DzikirDuration)
}

func TestOffloadPassesPlainURLsThrough(t *testing.T) {
	st := &SettingsStore{assets: &fakeSink{}}

	value, warnings := st.offload(
		"https://cdn/wall.jpg", "https://old", AssetWallpaper, SentinelLocalWallpaper, nil)

	assert.Equal(t, "https://cdn/wall.jpg", value)
	assert.Empty(t, warnings)
}
