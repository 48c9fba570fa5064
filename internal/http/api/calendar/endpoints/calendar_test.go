package endpoints

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/http/api"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if ok {
		m.hits++
	}
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Flush(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	hs, bad := calendar.ParseHolidays([]model.HolidayRecord{
		{Name: "Mid-Term Break", StartDate: "2026-02-15", DateRange: strPtr("2026-02-15 - 2026-02-19"), Type: "Term Holidays"},
		{Name: "Beginning of Ramadan", StartDate: "2026-02-18", Type: "Public Holiday"},
	})
	require.Empty(t, bad)
	return &catalog.Catalog{
		Holidays: hs,
		Prayers: map[string]model.NakaiPrayer{
			"18 Feb 2026": {NakaiNameEn: "Hiyaviha", NakaiDay: 10, Fajr: 4.87, Sunrise: 6.15, Dhuhr: 12.27, Asr: 15.45, Maghrib: 18.37, Isha: 19.57},
		},
		Months: map[string]model.MonthContent{
			"feb": {Flower: "Hibiscus", FlowerImage: "images/feb.png", Benefit1Title: "Vitamin C"},
		},
	}
}

func setupRouter(cat *catalog.Catalog, cache *memoryCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api"}, CalendarModule(CalendarConfig{
		Registry:   catalog.NewStaticRegistry(cat),
		Cache:      cache,
		CacheTTL:   time.Minute,
		Storage:    storage.NewLocalStorage("", "", "/uploads"),
		Now:        func() time.Time { return time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC) },
		SeasonYear: 2026,
		Options:    view.Options{Locale: calendar.LocaleEnglish},
	}))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetSelection(t *testing.T) {
	w := get(setupRouter(testCatalog(t), newMemoryCache()), "/api/selection")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"year":2026,"month":2,"slug":"feb","selected":"2026-02-14"}`, w.Body.String())
}

func TestGetMonthIsCached(t *testing.T) {
	cache := newMemoryCache()
	r := setupRouter(testCatalog(t), cache)

	first := get(r, "/api/calendar/feb?year=2026")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, 0, cache.hits)

	var v view.MonthView
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &v))
	assert.Equal(t, 2026, v.Year)
	assert.Equal(t, 2, v.Month)
	assert.Equal(t, "1447 Shaban – Ramadan", v.HijriLabel)
	assert.Len(t, v.Weeks, 4)
	require.NotNil(t, v.Selected)
	assert.Equal(t, "2026-02-14", v.Selected.Date)

	second := get(r, "/api/calendar/2?year=2026")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	// a different selection is a different page
	third := get(r, "/api/calendar/feb?year=2026&selected=2026-02-18")
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, 1, cache.hits)
	assert.NotEqual(t, first.Body.Bytes(), third.Body.Bytes())
}

func TestGetMonthDefaultsToSeasonYear(t *testing.T) {
	w := get(setupRouter(testCatalog(t), newMemoryCache()), "/api/calendar/mar")
	require.Equal(t, http.StatusOK, w.Code)

	var v view.MonthView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, 2026, v.Year)
	assert.Equal(t, 3, v.Month)
}

func TestGetMonthBadRequests(t *testing.T) {
	r := setupRouter(testCatalog(t), newMemoryCache())
	for _, path := range []string{
		"/api/calendar/13",
		"/api/calendar/smarch",
		"/api/calendar/feb?year=1800",
		"/api/calendar/feb?selected=14-02-2026",
	} {
		assert.Equal(t, http.StatusBadRequest, get(r, path).Code, path)
	}
}

func TestGetDay(t *testing.T) {
	r := setupRouter(testCatalog(t), newMemoryCache())

	w := get(r, "/api/days/2026-02-18")
	require.Equal(t, http.StatusOK, w.Code)
	var d view.DayView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "1 Ramadan 1447", d.Hijri)
	assert.Len(t, d.Holidays, 2)
	require.NotNil(t, d.Nakai)
	assert.Len(t, d.Prayers, 6)

	w = get(r, "/api/days/2026-02-19")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nakai":null`)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/days/yesterday").Code)
}

func TestGetMonthContent(t *testing.T) {
	r := setupRouter(testCatalog(t), newMemoryCache())

	w := get(r, "/api/months/Feb")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Slug     string          `json:"slug"`
		Flower   string          `json:"flower"`
		ImageURL string          `json:"image_url"`
		VideoURL string          `json:"video_url"`
		Benefits []model.Benefit `json:"benefits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "feb", resp.Slug)
	assert.Equal(t, "Hibiscus", resp.Flower)
	assert.Equal(t, "/uploads/images/feb.png", resp.ImageURL)
	assert.Empty(t, resp.VideoURL)
	assert.Len(t, resp.Benefits, 1)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/months/mar").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/months/xyz").Code)
}

func TestCatalogNotLoaded(t *testing.T) {
	r := setupRouter(nil, newMemoryCache())
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/api/calendar/feb").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/api/days/2026-02-18").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/selection").Code)
}
