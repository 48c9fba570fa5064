// Package broadcast pushes the daily calendar card to connected displays.
package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

// Card is today's summary as shown on a display.
type Card struct {
	Date      string            `json:"date"`
	Weekday   string            `json:"weekday"`
	WeekdayMv string            `json:"weekday_mv"`
	Hijri     string            `json:"hijri"`
	Dhivehi   string            `json:"dhivehi"`
	Holiday   *view.HolidayItem `json:"holiday,omitempty"`
	Nakai     *model.Nakai      `json:"nakai,omitempty"`
	Prayers   []model.Prayer    `json:"prayers,omitempty"`
}

// BuildCard summarizes opts.Now from cat.
func BuildCard(cat *catalog.Catalog, opts view.Options) Card {
	day := view.BuildDay(cat, opts.Now, opts)
	today := calendar.DateOf(opts.Now)

	card := Card{
		Date:      day.Date,
		Weekday:   today.Weekday().String(),
		WeekdayMv: calendar.DhivehiWeekday(today.Weekday()),
		Hijri:     day.Hijri,
		Dhivehi:   day.Dhivehi,
		Nakai:     day.Nakai,
		Prayers:   day.Prayers,
	}
	if h, ok := calendar.ResolvePriority(calendar.HolidaysForDate(today, cat.Holidays)); ok {
		item := view.NewHolidayItem(h)
		card.Holiday = &item
	}
	return card
}

var ErrNoCatalog = errors.New("catalog not loaded")

type Broadcaster struct {
	pub      Publisher
	topic    string
	registry *catalog.Registry
	now      func() time.Time
	opts     view.Options

	mu       sync.Mutex
	lastDate string
}

// NewBroadcaster publishes to topic. now supplies the local wall clock.
func NewBroadcaster(pub Publisher, topic string, registry *catalog.Registry, now func() time.Time, opts view.Options) *Broadcaster {
	return &Broadcaster{pub: pub, topic: topic, registry: registry, now: now, opts: opts}
}

// PublishNow sends today's card regardless of what was sent before.
func (b *Broadcaster) PublishNow() (Card, error) {
	cat := b.registry.Current()
	if cat == nil {
		return Card{}, ErrNoCatalog
	}

	opts := b.opts
	opts.Now = b.now()
	card := BuildCard(cat, opts)

	payload, err := json.Marshal(card)
	if err != nil {
		return Card{}, err
	}
	if err := b.pub.Publish(b.topic, payload); err != nil {
		log.Error().Err(err).Str("topic", b.topic).Msg("failed to publish calendar card")
		return Card{}, err
	}

	b.mu.Lock()
	b.lastDate = card.Date
	b.mu.Unlock()
	log.Info().Str("topic", b.topic).Str("date", card.Date).Msg("calendar card published")
	return card, nil
}

// tick publishes only when the local date moved since the last card.
func (b *Broadcaster) tick() {
	date := calendar.DateOf(b.now()).Format(calendar.ISODate)
	b.mu.Lock()
	same := date == b.lastDate
	b.mu.Unlock()
	if same {
		return
	}
	if _, err := b.PublishNow(); err != nil {
		log.Warn().Err(err).Msg("calendar card tick failed")
	}
}

// DefaultInterval is used by Run when given a non-positive interval.
const DefaultInterval = time.Minute

// Run publishes immediately and then on every date change until ctx is done.
func (b *Broadcaster) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Warn().Dur("interval", interval).Msg("non-positive broadcast interval, using default")
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	b.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.tick()
		}
	}
}
