package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/broadcast"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/config"
	"github.com/Nixie-Tech-LLC/nakai/internal/db"
	"github.com/Nixie-Tech-LLC/nakai/internal/redis"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

func main() {
	LoadEnvironment()

	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	SetupLogging(cfg.Environment, cfg.LogLevel)

	now := func() time.Time { return time.Now().In(cfg.Location) }
	store := InitStorage(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// holidays come from postgres when configured, holidays.json otherwise
	var holidays catalog.HolidaySource
	if cfg.HolidaySource == config.HolidaySourceDB {
		if err := db.Init(ctx, cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("db init")
		}
		if _, err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}
		holidays = db.NewStore(db.DB)
	}

	registry := catalog.NewRegistry(catalog.NewLoader(store, holidays))
	if _, err := registry.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load calendar data")
	}

	var cache redis.Cache = redis.NopCache{}
	if cfg.RedisAddress != "" {
		rc := redis.NewRedisCache(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, continuing without cache")
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	// browser displays always get the card; MQTT screens only when a broker is set
	hub := broadcast.NewHub()
	publishers := broadcast.Fanout{hub}
	if cfg.MQTTBrokerURL != "" {
		pub, err := broadcast.NewMQTTPublisher(cfg.MQTTBrokerURL, "nakai-"+uuid.NewString()[:8])
		if err != nil {
			log.Error().Err(err).Msg("MQTT unavailable, cards go to websocket displays only")
		} else {
			publishers = append(publishers, pub)
		}
	}
	defer publishers.Close()
	broadcaster := broadcast.NewBroadcaster(publishers, cfg.MQTTTopic, registry, now, view.Options{})
	go broadcaster.Run(ctx, cfg.BroadcastInterval)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, cfg, Services{
		Registry:    registry,
		Cache:       cache,
		Storage:     store,
		Broadcaster: broadcaster,
		Hub:         hub,
		Now:         now,
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Int("season_year", cfg.SeasonYear).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
