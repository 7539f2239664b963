package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/masjid-labs/muadhin/internal/db"
	"github.com/masjid-labs/muadhin/internal/engine"
	"github.com/masjid-labs/muadhin/internal/http/api"
	authapi "github.com/masjid-labs/muadhin/internal/http/api/admin/auth/endpoints"
	controlapi "github.com/masjid-labs/muadhin/internal/http/api/admin/control/endpoints"
	displayapi "github.com/masjid-labs/muadhin/internal/http/api/display/endpoints"
	"github.com/masjid-labs/muadhin/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, settings *db.SettingsStore, assets storage.Storage, driver *engine.Driver) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"ETag",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		controlapi.SettingsModule(settings, assets, driver.NotifySettingsChanged),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/display",
	},
		displayapi.DisplayModule(driver),
	)

	// Locally stored assets (wallpaper, alarm tone).
	if local, ok := assets.(*storage.LocalStorage); ok {
		r.Static("/assets", local.Dir())
	}
}
