package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/config"
	"github.com/Nixie-Tech-LLC/nakai/internal/redis"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
)

func testEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, cfg, Services{
		Registry: catalog.NewStaticRegistry(&catalog.Catalog{}),
		Cache:    redis.NopCache{},
		Storage:  storage.NewLocalStorage("", "", "/uploads"),
		Now:      func() time.Time { return time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC) },
	})
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHealthAndRedirect(t *testing.T) {
	r := testEngine(&config.Config{SeasonYear: 2026, CacheTTL: time.Minute, UseSpaces: true})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health").Code)

	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/calendar/feb?year=2026", w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/calendar/feb").Code)
}

func TestAdminRoutesOnlyWhenConfigured(t *testing.T) {
	r := testEngine(&config.Config{SeasonYear: 2026, UseSpaces: true})
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPost, "/api/admin/auth/login").Code)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	assert.NoError(t, err)
	r = testEngine(&config.Config{SeasonYear: 2026, UseSpaces: true, JWTSecret: "s", AdminPasswordHash: string(hash)})
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/admin/catalog/reload").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/admin/auth/login").Code)
}
