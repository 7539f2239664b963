package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/http/middleware"
)

// Module is one mountable slice of the API surface. Each endpoints
// package exposes constructors returning Modules; the route table
// composes them into groups.
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc adapts a bare function to Module.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// GroupConfig describes how a group of modules is mounted: the URL
// prefix, whether the JWT guard applies, and any extra middleware.
type GroupConfig struct {
	Prefix     string
	Auth       bool
	SecretKey  string // signing key for the JWT guard, required when Auth is set
	Middleware []gin.HandlerFunc
}

// MountGroup attaches modules under a prefix on the given router. With
// Auth set every route in the group runs behind the JWT middleware.
func MountGroup(parent gin.IRoutes, cfg GroupConfig, modules ...Module) {
	grp := groupFor(parent, cfg.Prefix)

	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	if cfg.Auth {
		if cfg.SecretKey == "" {
			log.Fatal().Str("prefix", cfg.Prefix).Msg("authenticated group mounted without a secret key")
		}
		grp.Use(middleware.JWTMiddleware(cfg.SecretKey))
	}

	c := &Controller{Group: grp}
	for _, m := range modules {
		m.Mount(c)
	}
}

func groupFor(parent gin.IRoutes, prefix string) *gin.RouterGroup {
	switch v := parent.(type) {
	case *gin.Engine:
		return v.Group(prefix)
	case *gin.RouterGroup:
		if prefix == "" {
			return v
		}
		return v.Group(prefix)
	default:
		log.Fatal().Str("type", fmt.Sprintf("%T", parent)).Msg("unsupported router type for MountGroup")
		return nil
	}
}
