package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/nakai/internal/broadcast"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/config"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api"
	authapi "github.com/Nixie-Tech-LLC/nakai/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Nixie-Tech-LLC/nakai/internal/http/api/admin/control/endpoints"
	calendarapi "github.com/Nixie-Tech-LLC/nakai/internal/http/api/calendar/endpoints"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api/live"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/nakai/internal/redis"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

// Services bundles everything the routes depend on.
type Services struct {
	Registry    *catalog.Registry
	Cache       redis.Cache
	Storage     storage.Storage
	Broadcaster *broadcast.Broadcaster
	Hub         *broadcast.Hub
	Now         func() time.Time
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc Services) {
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: false,
	}))

	calendarCfg := calendarapi.CalendarConfig{
		Registry:   svc.Registry,
		Cache:      svc.Cache,
		CacheTTL:   cfg.CacheTTL,
		Storage:    svc.Storage,
		Now:        svc.Now,
		SeasonYear: cfg.SeasonYear,
		Options:    view.Options{},
	}
	selection := calendarapi.NewCalendarController(calendarCfg)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/", func(c *gin.Context) {
		sel := selection.DefaultSelection()
		c.Redirect(http.StatusFound, "/api/calendar/"+catalog.MonthSlug(sel.Month)+"?year="+strconv.Itoa(sel.Year))
	})

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		calendarapi.CalendarModule(calendarCfg),
	)

	if svc.Hub != nil {
		r.GET("/api/live", live.DisplaySocket(svc.Hub))
	}

	if cfg.AdminEnabled() {
		api.MountGroup(r, api.GroupConfig{
			Prefix: "/api/admin",
		},
			authapi.AuthPublicModule(cfg.JWTSecret, cfg.AdminPasswordHash, svc.Now),
		)

		api.MountGroup(r, api.GroupConfig{
			Prefix:    "/api/admin",
			Auth:      true,
			SecretKey: cfg.JWTSecret,
		},
			authapi.AuthSessionModule(),
			adminapi.CatalogModule(svc.Registry, svc.Cache, svc.Storage, svc.Broadcaster),
		)
	}

	// uploaded assets
	if !cfg.UseSpaces {
		r.Static("/uploads", UploadsDir)
	}
}
