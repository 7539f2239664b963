package db

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/model"
)

// Sentinel values stored in place of asset URLs when the asset itself
// lives in local storage. The HTTP layer maps them back to served
// asset paths.
const (
	SentinelLocalWallpaper = "local-wallpaper"
	SentinelLocalAlarm     = "local-alarm"
)

// Asset names used with the asset sink.
const (
	AssetWallpaper = "wallpaper"
	AssetAlarm     = "alarm"
)

// AssetSink stores uploaded binary assets. Save fails when the asset
// exceeds the sink's capacity.
type AssetSink interface {
	Save(name, mimeType string, data []byte) error
}

// SettingsStore persists the configuration blob as a single row and
// keeps an in-memory copy so the display loop can read it every second
// without touching the database.
type SettingsStore struct {
	assets AssetSink

	mu      sync.RWMutex
	current model.Settings
}

// NewSettingsStore loads the stored settings, falling back to defaults
// on a fresh database.
func NewSettingsStore(assets AssetSink) (*SettingsStore, error) {
	st := &SettingsStore{assets: assets}
	cfg, err := loadSettings()
	if errors.Is(err, sql.ErrNoRows) {
		cfg = model.DefaultSettings()
		if err := persistSettings(cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	st.current = cfg
	return st, nil
}

// Current returns the active configuration.
func (st *SettingsStore) Current() model.Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Save persists a new configuration. Inline data-URL assets in the
// wallpaper and alarm fields are moved to the asset sink and replaced
// with sentinels; when a sink rejects an asset only that field reverts
// to its previous value and a warning is returned, the rest of the
// settings still commit.
func (st *SettingsStore) Save(incoming model.Settings) (model.Settings, []string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var warnings []string
	prev := st.current

	incoming = normalizeDurations(incoming)
	incoming.WallpaperURL, warnings = st.offload(
		incoming.WallpaperURL, prev.WallpaperURL, AssetWallpaper, SentinelLocalWallpaper, warnings)
	incoming.AlarmSoundURL, warnings = st.offload(
		incoming.AlarmSoundURL, prev.AlarmSoundURL, AssetAlarm, SentinelLocalAlarm, warnings)

	if err := persistSettings(incoming); err != nil {
		return prev, warnings, err
	}
	st.current = incoming
	return incoming, warnings, nil
}

func (st *SettingsStore) offload(value, previous, asset, sentinel string, warnings []string) (string, []string) {
	mimeType, data, ok := splitDataURL(value)
	if !ok {
		return value, warnings
	}
	if st.assets == nil {
		return previous, append(warnings, fmt.Sprintf("%s upload rejected: no asset storage configured", asset))
	}
	if err := st.assets.Save(asset, mimeType, data); err != nil {
		log.Warn().Err(err).Str("asset", asset).Msg("asset rejected, keeping previous value")
		return previous, append(warnings, fmt.Sprintf("%s upload rejected: %v", asset, err))
	}
	return sentinel, warnings
}

// normalizeDurations clamps negative cycle durations to zero before the
// blob is stored. The engine treats zero as a one-tick phase.
func normalizeDurations(cfg model.Settings) model.Settings {
	if cfg.PrayerDuration < 0 {
		cfg.PrayerDuration = 0
	}
	if cfg.DzikirDuration < 0 {
		cfg.DzikirDuration = 0
	}
	return cfg
}

// splitDataURL decodes a base64 data URL into its MIME type and bytes.
// Anything else, including plain http(s) URLs and sentinels, yields
// ok=false.
func splitDataURL(s string) (mimeType string, data []byte, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, false
	}
	meta, payload, found := strings.Cut(s[len("data:"):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return strings.TrimSuffix(meta, ";base64"), raw, true
}

func loadSettings() (model.Settings, error) {
	var raw []byte
	err := DB.Get(&raw, `SELECT data FROM settings WHERE id = 1;`)
	if err != nil {
		return model.Settings{}, err
	}
	var cfg model.Settings
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.Settings{}, fmt.Errorf("corrupt settings row: %w", err)
	}
	return cfg, nil
}

func persistSettings(cfg model.Settings) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = DB.Exec(`
	INSERT INTO settings (id, data, updated_at)
	VALUES (1, $1, now())
	ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now();
	`, raw)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist settings")
	}
	return err
}
