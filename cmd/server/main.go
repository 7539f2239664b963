package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/aladhan"
	"github.com/masjid-labs/muadhin/internal/audio"
	"github.com/masjid-labs/muadhin/internal/db"
	"github.com/masjid-labs/muadhin/internal/engine"
	"github.com/masjid-labs/muadhin/internal/hijri"
	"github.com/masjid-labs/muadhin/internal/mqtt"
	"github.com/masjid-labs/muadhin/internal/netwatch"
	muadhinredis "github.com/masjid-labs/muadhin/internal/redis"
	"github.com/masjid-labs/muadhin/internal/schedule"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	env := LoadEnvironment()
	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	assets := InitStorage(env)

	settings, err := db.NewSettingsStore(assets)
	if err != nil {
		log.Fatal().Err(err).Msg("settings store")
	}
	store := db.NewStore()

	watcher := netwatch.New()
	go watcher.Run()
	defer watcher.Stop()

	cache, err := muadhinredis.NewScheduleCache(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("redis init")
	}

	client := aladhan.NewClient()
	resolver := schedule.NewResolver(schedule.NewAladhanFetcher(client), cache, watcher.Online)
	hijriSrc := hijri.NewProvider(client, watcher.Online)

	var player audio.Player = audio.LogPlayer{}
	var events engine.StatePublisher
	if env.MQTTBroker != "" {
		pub, err := mqtt.NewPublisher(env.MQTTBroker, env.DisplayID)
		if err != nil {
			log.Warn().Err(err).Msg("mqtt unavailable, alarms will only be logged")
		} else {
			defer pub.Close()
			player = audio.NewRemotePlayer(pub)
			events = pub
		}
	}

	driver := engine.NewDriver(resolver, hijriSrc, player, events, settings, watcher.Online)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go driver.Run(ctx)

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, settings, assets, driver)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
