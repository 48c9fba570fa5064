package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/broadcast"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api/admin/control/packets"
	calendarapi "github.com/Nixie-Tech-LLC/nakai/internal/http/api/calendar/endpoints"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/nakai/internal/redis"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
)

const maxAssetSize = 50 << 20

type CatalogController struct {
	registry    *catalog.Registry
	cache       redis.Cache
	storage     storage.Storage
	broadcaster *broadcast.Broadcaster
}

func newCatalogController(registry *catalog.Registry, cache redis.Cache, st storage.Storage, b *broadcast.Broadcaster) *CatalogController {
	if cache == nil {
		cache = redis.NopCache{}
	}
	return &CatalogController{registry: registry, cache: cache, storage: st, broadcaster: b}
}

// CatalogModule mounts the authenticated content management endpoints.
// broadcaster may be nil, in which case /broadcast answers 503.
func CatalogModule(registry *catalog.Registry, cache redis.Cache, st storage.Storage, broadcaster *broadcast.Broadcaster) api.Module {
	ctl := newCatalogController(registry, cache, st, broadcaster)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/catalog/reload", ctl.reloadCatalog)
		c.POST("/assets", ctl.uploadAsset)
		c.POST("/broadcast", ctl.broadcastNow)
	})
}

// POST /api/admin/catalog/reload
func (c *CatalogController) reloadCatalog(ctx *gin.Context, admin *middleware.Admin) (any, *api.APIError) {
	cat, err := c.registry.Reload(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("admin", admin.Subject).Msg("catalog reload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reload calendar data"}
	}
	if err := c.cache.Flush(ctx.Request.Context(), calendarapi.CachePrefix); err != nil {
		log.Warn().Err(err).Msg("cache flush after reload failed")
	}

	return packets.ReloadResponse{
		Holidays:   len(cat.Holidays),
		PrayerDays: len(cat.Prayers),
		Months:     len(cat.Months),
		Dropped:    cat.Dropped,
		LoadedAt:   cat.LoadedAt.Format(time.RFC3339),
	}, nil
}

// POST /api/admin/assets (multipart field "file")
func (c *CatalogController) uploadAsset(ctx *gin.Context, admin *middleware.Admin) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file"}
	}
	if fileHeader.Size > maxAssetSize {
		return nil, &api.APIError{Code: http.StatusRequestEntityTooLarge, Message: "file too large"}
	}

	url, err := c.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("asset upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	log.Info().Str("admin", admin.Subject).Str("url", url).Msg("asset uploaded")
	return packets.AssetResponse{Name: fileHeader.Filename, URL: url}, nil
}

// POST /api/admin/broadcast
func (c *CatalogController) broadcastNow(ctx *gin.Context, admin *middleware.Admin) (any, *api.APIError) {
	if c.broadcaster == nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "broadcast not configured"}
	}
	card, err := c.broadcaster.PublishNow()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not publish card"}
	}
	return card, nil
}
