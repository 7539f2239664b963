package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/db"
	"github.com/masjid-labs/muadhin/internal/http/api"
	"github.com/masjid-labs/muadhin/internal/http/api/admin/control/packets"
	"github.com/masjid-labs/muadhin/internal/model"
	"github.com/masjid-labs/muadhin/internal/storage"
)

// SettingsModule mounts the configuration endpoints. notify is called
// after every successful save so the display loop re-resolves its
// schedule without a restart.
func SettingsModule(settings *db.SettingsStore, assets storage.Storage, notify func()) api.Module {
	ctl := &settingsManager{settings: settings, assets: assets, notify: notify}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.updateSettings)
	})
}

type settingsManager struct {
	settings *db.SettingsStore
	assets   storage.Storage
	notify   func()
}

// GET /api/admin/settings
func (s *settingsManager) getSettings(ctx *gin.Context, _ *model.Admin) (any, *api.APIError) {
	cfg := s.resolveAssetURLs(s.settings.Current())
	return packets.SettingsResponse{Settings: cfg}, nil
}

// PUT /api/admin/settings
func (s *settingsManager) updateSettings(ctx *gin.Context, admin *model.Admin) (any, *api.APIError) {
	var request packets.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	saved, warnings, err := s.settings.Save(request.Settings)
	if err != nil {
		log.Error().Err(err).Str("admin", admin.Email).Msg("failed to save settings")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	if s.notify != nil {
		s.notify()
	}

	return packets.SettingsResponse{
		Settings: s.resolveAssetURLs(saved),
		Warnings: warnings,
	}, nil
}

// resolveAssetURLs swaps storage sentinels for servable URLs before the
// blob leaves the API.
func (s *settingsManager) resolveAssetURLs(cfg model.Settings) model.Settings {
	if s.assets == nil {
		return cfg
	}
	if cfg.WallpaperURL == db.SentinelLocalWallpaper {
		if url, ok := s.assets.URL(db.AssetWallpaper); ok {
			cfg.WallpaperURL = url
		}
	}
	if cfg.AlarmSoundURL == db.SentinelLocalAlarm {
		if url, ok := s.assets.URL(db.AssetAlarm); ok {
			cfg.AlarmSoundURL = url
		}
	}
	return cfg
}
