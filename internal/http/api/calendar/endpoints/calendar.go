package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api/calendar/packets"
	"github.com/Nixie-Tech-LLC/nakai/internal/redis"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

// CachePrefix namespaces every rendered month in the cache.
const CachePrefix = "calendar:month:"

type CalendarController struct {
	registry   *catalog.Registry
	cache      redis.Cache
	cacheTTL   time.Duration
	storage    storage.Storage
	now        func() time.Time
	seasonYear int
	opts       view.Options
}

type CalendarConfig struct {
	Registry   *catalog.Registry
	Cache      redis.Cache
	CacheTTL   time.Duration
	Storage    storage.Storage
	Now        func() time.Time
	SeasonYear int
	Options    view.Options
}

func NewCalendarController(cfg CalendarConfig) *CalendarController {
	cache := cfg.Cache
	if cache == nil {
		cache = redis.NopCache{}
	}
	return &CalendarController{
		registry:   cfg.Registry,
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
		storage:    cfg.Storage,
		now:        cfg.Now,
		seasonYear: cfg.SeasonYear,
		opts:       cfg.Options,
	}
}

// CalendarModule mounts the public calendar endpoints
func CalendarModule(cfg CalendarConfig) api.Module {
	ctl := NewCalendarController(cfg)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/selection", ctl.getSelection)
		c.PUBLIC_GET("/calendar/:month", ctl.getMonth)
		c.PUBLIC_GET("/days/:date", ctl.getDay)
		c.PUBLIC_GET("/months/:slug", ctl.getMonthContent)
	})
}

// DefaultSelection is where "/" sends visitors.
func (c *CalendarController) DefaultSelection() view.Selection {
	return view.DefaultSelection(c.now(), c.seasonYear)
}

func (c *CalendarController) catalog() (*catalog.Catalog, *api.APIError) {
	cat := c.registry.Current()
	if cat == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "calendar data not loaded"}
	}
	return cat, nil
}

// GET /api/selection
func (c *CalendarController) getSelection(ctx *gin.Context) (any, *api.APIError) {
	sel := c.DefaultSelection()
	return packets.SelectionResponse{
		Year:     sel.Year,
		Month:    sel.Month,
		Slug:     catalog.MonthSlug(sel.Month),
		Selected: sel.Selected.Format(calendar.ISODate),
	}, nil
}

// GET /api/calendar/:month?year=2026&selected=2026-02-14
func (c *CalendarController) getMonth(ctx *gin.Context) (any, *api.APIError) {
	month, err := catalog.ParseMonth(ctx.Param("month"))
	if err != nil {
		return nil, api.BadRequest(err)
	}

	var request packets.MonthQuery
	if err := ctx.ShouldBindQuery(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	year := request.Year
	if year == 0 {
		year = c.seasonYear
	}

	now := c.now()
	selected := view.DefaultSelection(now, c.seasonYear).Selected
	if request.Selected != "" {
		if selected, err = calendar.ParseDate(request.Selected); err != nil {
			return nil, api.BadRequest(err)
		}
	}

	cat, apiErr := c.catalog()
	if apiErr != nil {
		return nil, apiErr
	}

	key := fmt.Sprintf("%s%04d-%02d:today=%s:selected=%s:loaded=%d",
		CachePrefix, year, month,
		calendar.DateOf(now).Format(calendar.ISODate),
		selected.Format(calendar.ISODate),
		cat.LoadedAt.UnixNano(),
	)
	if cached, ok, err := c.cache.Get(ctx.Request.Context(), key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("calendar cache read failed")
	} else if ok {
		return json.RawMessage(cached), nil
	}

	opts := c.opts
	opts.Now = now
	v, err := view.BuildMonth(cat, year, month, selected, opts)
	if err != nil {
		return nil, api.BadRequest(err)
	}

	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode month view")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not render month"}
	}
	if err := c.cache.Set(ctx.Request.Context(), key, body, c.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("calendar cache write failed")
	}
	return json.RawMessage(body), nil
}

// GET /api/days/:date
func (c *CalendarController) getDay(ctx *gin.Context) (any, *api.APIError) {
	date, err := calendar.ParseDate(ctx.Param("date"))
	if err != nil {
		return nil, api.BadRequest(err)
	}

	cat, apiErr := c.catalog()
	if apiErr != nil {
		return nil, apiErr
	}

	opts := c.opts
	opts.Now = c.now()
	return view.BuildDay(cat, date, opts), nil
}

// GET /api/months/:slug
func (c *CalendarController) getMonthContent(ctx *gin.Context) (any, *api.APIError) {
	month, err := catalog.ParseMonth(ctx.Param("slug"))
	if err != nil {
		return nil, api.BadRequest(err)
	}

	cat, apiErr := c.catalog()
	if apiErr != nil {
		return nil, apiErr
	}

	slug := catalog.MonthSlug(month)
	content, ok := cat.Months[slug]
	if !ok {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no content for " + slug}
	}

	return packets.MonthContentResponse{
		Slug:        slug,
		Month:       month,
		Flower:      content.Flower,
		FlowerMv:    content.FlowerMv,
		Description: content.FlowerDescription,
		ThemeColor:  content.ThemeColor,
		ImageURL:    c.storage.URL(content.FlowerImage),
		VideoURL:    c.storage.URL(content.Video),
		Benefits:    content.Benefits(),
	}, nil
}
