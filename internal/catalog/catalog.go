// Package catalog loads the static calendar content: holidays, the nakai and
// prayer timetable, and per-month marketing copy.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
)

const (
	HolidaysFile = "holidays.json"
	PrayersFile  = "nakai_prayer.json"
	MonthsFile   = "month.json"
)

// Catalog is immutable once loaded; reloads build a new one.
type Catalog struct {
	Holidays []calendar.Holiday
	Prayers  map[string]model.NakaiPrayer
	Months   map[string]model.MonthContent
	Dropped  int // records skipped as malformed
	LoadedAt time.Time
}

// HolidaySource supplies holiday records from somewhere other than holidays.json.
type HolidaySource interface {
	ListHolidays(ctx context.Context) ([]model.HolidayRecord, error)
}

type Loader struct {
	storage  storage.Storage
	holidays HolidaySource
	validate *validator.Validate
}

// NewLoader reads data files from st. When holidays is nil the holiday list
// comes from holidays.json as well.
func NewLoader(st storage.Storage, holidays HolidaySource) *Loader {
	return &Loader{storage: st, holidays: holidays, validate: validator.New()}
}

// Load reads everything. Only a missing or undecodable holiday list is fatal;
// malformed records are dropped and logged, and missing prayer or month files
// leave those sections empty.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	cat := &Catalog{
		Prayers:  map[string]model.NakaiPrayer{},
		Months:   map[string]model.MonthContent{},
		LoadedAt: time.Now(),
	}

	recs, err := l.holidayRecords(ctx)
	if err != nil {
		return nil, err
	}
	cat.Holidays, cat.Dropped = l.parseHolidays(recs)

	var prayers map[string]model.NakaiPrayer
	if err := l.decodeOptional(ctx, PrayersFile, &prayers); err != nil {
		return nil, err
	}
	for key, rec := range prayers {
		if err := l.validate.Struct(rec); err != nil {
			log.Warn().Err(err).Str("date", key).Msg("dropping malformed prayer record")
			cat.Dropped++
			continue
		}
		cat.Prayers[key] = rec
	}

	var months map[string]model.MonthContent
	if err := l.decodeOptional(ctx, MonthsFile, &months); err != nil {
		return nil, err
	}
	for slug, content := range months {
		if _, err := ParseMonth(slug); err != nil {
			log.Warn().Str("slug", slug).Msg("dropping month content with unknown slug")
			cat.Dropped++
			continue
		}
		if err := l.validate.Struct(content); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("dropping malformed month content")
			cat.Dropped++
			continue
		}
		cat.Months[slug] = content
	}

	log.Info().
		Int("holidays", len(cat.Holidays)).
		Int("prayer_days", len(cat.Prayers)).
		Int("months", len(cat.Months)).
		Int("dropped", cat.Dropped).
		Msg("catalog loaded")
	return cat, nil
}

func (l *Loader) holidayRecords(ctx context.Context) ([]model.HolidayRecord, error) {
	if l.holidays != nil {
		recs, err := l.holidays.ListHolidays(ctx)
		if err != nil {
			return nil, fmt.Errorf("list holidays: %w", err)
		}
		return recs, nil
	}

	rc, err := l.storage.Open(ctx, HolidaysFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadHolidaysJSON(rc)
}

func (l *Loader) parseHolidays(recs []model.HolidayRecord) ([]calendar.Holiday, int) {
	valid := make([]model.HolidayRecord, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		if err := l.validate.Struct(rec); err != nil {
			log.Warn().Err(err).Str("holiday", rec.Name).Msg("dropping invalid holiday record")
			dropped++
			continue
		}
		valid = append(valid, rec)
	}

	holidays, bad := calendar.ParseHolidays(valid)
	for _, e := range bad {
		log.Warn().
			Err(e.Err).
			Str("holiday", e.Name).
			Str("kind", calendar.KindOf(e.Err).String()).
			Msg("dropping malformed holiday record")
	}
	return holidays, dropped + len(bad)
}

func (l *Loader) decodeOptional(ctx context.Context, name string, v any) error {
	rc, err := l.storage.Open(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		log.Warn().Str("file", name).Msg("data file missing, section left empty")
		return nil
	}
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func ReadHolidaysJSON(r io.Reader) ([]model.HolidayRecord, error) {
	var recs []model.HolidayRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", HolidaysFile, err)
	}
	return recs, nil
}

// ReadHolidaysCSV reads rows with the header name,start_date,date_range,type.
func ReadHolidaysCSV(r io.Reader) ([]model.HolidayRecord, error) {
	var rows []*model.HolidayRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode holiday csv: %w", err)
	}
	recs := make([]model.HolidayRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.Record())
	}
	return recs, nil
}

// Registry holds the live catalog and swaps it on reload.
type Registry struct {
	mu     sync.RWMutex
	cur    *Catalog
	loader *Loader
}

func NewRegistry(loader *Loader) *Registry {
	return &Registry{loader: loader}
}

// NewStaticRegistry serves a fixed catalog; Reload returns it unchanged.
func NewStaticRegistry(cat *Catalog) *Registry {
	return &Registry{cur: cat}
}

func (r *Registry) Reload(ctx context.Context) (*Catalog, error) {
	if r.loader == nil {
		return r.Current(), nil
	}
	cat, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.cur = cat
	r.mu.Unlock()
	return cat, nil
}

func (r *Registry) Current() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cur
}
